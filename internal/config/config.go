package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	HTTPAddr        string
	StorageBackend  string // file | redis | memory
	DataDir         string
	RedisAddr       string
	CredentialsURL  string
	ServiceName     string
	ShutdownTimeout time.Duration
}

func Load() Config {
	return Config{
		HTTPAddr:        getenv("HTTP_ADDR", ":8080"),
		StorageBackend:  getenv("STORAGE_BACKEND", "file"),
		DataDir:         getenv("DATA_DIR", "./data"),
		RedisAddr:       getenv("REDIS_ADDR", "redis:6379"),
		CredentialsURL:  getenv("CREDENTIALS_URL", "http://localhost:8080/LoginAdmin.txt"),
		ServiceName:     getenv("SERVICE_NAME", "mhdelivery"),
		ShutdownTimeout: durenvs("SHUTDOWN_TIMEOUT", 5),
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func durenvs(key string, defSec int) time.Duration {
	v := getenv(key, "")
	if v == "" {
		return time.Duration(defSec) * time.Second
	}
	sec, err := strconv.Atoi(v)
	if err != nil {
		return time.Duration(defSec) * time.Second
	}
	return time.Duration(sec) * time.Second
}
