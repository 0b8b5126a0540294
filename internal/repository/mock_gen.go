package repository

//go:generate mockgen -source=./repository.go -destination=../mocks/mock_transactor.go -package=mocks Transactor,Transaction
//go:generate mockgen -source=./company.go -destination=../mocks/mock_company_repository.go -package=mocks CompanyRepositoryIface
//go:generate mockgen -source=./user.go -destination=../mocks/mock_user_repository.go -package=mocks UserRepositoryIface
//go:generate mockgen -source=./asset.go -destination=../mocks/mock_asset_repository.go -package=mocks AssetRepositoryIface
//go:generate mockgen -source=./part.go -destination=../mocks/mock_part_repository.go -package=mocks PartRepositoryIface
//go:generate mockgen -source=./preventive_maintenance.go -destination=../mocks/mock_preventive_maintenance_repository.go -package=mocks PreventiveMaintenanceRepositoryIface
//go:generate mockgen -source=./work_order.go -destination=../mocks/mock_work_order_repository.go -package=mocks WorkOrderRepositoryIface
//go:generate mockgen -source=./refresh_token.go -destination=../mocks/mock_refresh_token_repository.go -package=mocks RefreshTokenRepositoryIface
