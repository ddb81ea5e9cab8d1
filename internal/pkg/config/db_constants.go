package config

// Database driver types
const (
	SqliteDbType   = "sqlite"
	PostgresDbType = "postgres"
	MysqlDbType    = "mysql"
)

// Database targets selectable with --db
const (
	TargetDev  = "DEV"
	TargetProd = "PROD"
)
