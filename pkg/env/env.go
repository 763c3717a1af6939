package env

import (
  "os"
  "time"

  "github.com/spf13/cast"
)

const (
  DEV  Env = "DEV"
  PROD Env = "PROD"
)

type Env = string

func IsProduction() bool {
  return os.Getenv("ENV") == PROD
}

func String(key string, fallback string) string {
  value, ok := os.LookupEnv(key)
  if !ok {
    return fallback
  }
  return value
}

func Int(key string, fallback int) int {
  value, ok := os.LookupEnv(key)
  if !ok {
    return fallback
  }
  return cast.ToInt(value)
}

func Duration(key string, fallback time.Duration) time.Duration {
  value, ok := os.LookupEnv(key)
  if !ok {
    return fallback
  }
  return cast.ToDuration(value)
}
