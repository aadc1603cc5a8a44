package configs

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

var (
	BuildingTokenSecret string
	BuildingTokenTTL    time.Duration
	AdminAPIKey         string
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ Tidak menemukan .env file, menggunakan ENV dari sistem")
		} else {
			log.Println("✅ .env file berhasil dimuat!")
		}
	} else {
		log.Println("🚀 Running in Railway, menggunakan ENV dari sistem")
	}

	BuildingTokenSecret = GetEnv("BUILDING_TOKEN_SECRET")
	AdminAPIKey = GetEnv("ADMIN_API_KEY")
	BuildingTokenTTL = time.Duration(envInt("BUILDING_TOKEN_TTL_HOURS", 12)) * time.Hour

	if BuildingTokenSecret == "" {
		log.Println("❌ BUILDING_TOKEN_SECRET belum diset!")
	} else {
		log.Println("✅ BUILDING_TOKEN_SECRET berhasil dimuat.")
	}

	if AdminAPIKey == "" {
		log.Println("⚠️ ADMIN_API_KEY belum diset, endpoint admin gedung nonaktif.")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return def
}
