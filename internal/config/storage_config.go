package config

const (
	storageDriverVar = "HOSTEL_STORAGE_DRIVER"
	storagePathVar   = "HOSTEL_STORAGE_PATH"
	storagePrefixVar = "HOSTEL_STORAGE_PREFIX"
	redisAddrVar     = "REDIS_ADDR"
	redisPasswordVar = "REDIS_PASSWORD"
	redisDBVar       = "REDIS_DB"
)

type StorageConfig interface {
	GetStorageDriver() string
	GetStoragePath() string
	GetStoragePrefix() string
	GetRedisAddr() string
	GetRedisPassword() string
	GetRedisDB() int
}

type Storage struct{}

var _ StorageConfig = Storage{}

// GetStorageDriver is one of "memory", "redis", "sqlite" or "none".
func (Storage) GetStorageDriver() string {
	return GetEnv(storageDriverVar, "sqlite")
}

func (Storage) GetStoragePath() string {
	return GetEnv(storagePathVar, "./data/hostel.db")
}

func (Storage) GetStoragePrefix() string {
	return GetEnv(storagePrefixVar, "hostel:")
}

func (Storage) GetRedisAddr() string {
	return GetEnv(redisAddrVar, "127.0.0.1:6379")
}

func (Storage) GetRedisPassword() string {
	return GetEnv(redisPasswordVar, "")
}

func (Storage) GetRedisDB() int {
	return GetEnvInt(redisDBVar, 0)
}
