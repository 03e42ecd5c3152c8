package app

import (
	"time"

	"github.com/yungbote/roadquiz-backend/internal/pkg/envutil"
	"github.com/yungbote/roadquiz-backend/internal/pkg/logger"
)

type Config struct {
	JWTSecretKey    string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
	UploadDir       string
}

func LoadConfig(log *logger.Logger) Config {
	jwtSecretKey := envutil.GetEnv("JWT_SECRET_KEY", "defaultsecret", log)
	accessTokenTTLSeconds := envutil.GetEnvAsInt("ACCESS_TOKEN_TTL", 3600, log)
	refreshTokenTTLSeconds := envutil.GetEnvAsInt("REFRESH_TOKEN_TTL", 86400, log)
	uploadDir := envutil.GetEnv("UPLOAD_DIR", "uploads", log)
	return Config{
		JWTSecretKey:    jwtSecretKey,
		AccessTokenTTL:  time.Duration(accessTokenTTLSeconds) * time.Second,
		RefreshTokenTTL: time.Duration(refreshTokenTTLSeconds) * time.Second,
		UploadDir:       uploadDir,
	}
}
