package config

import (
	"log"

	"github.com/joho/godotenv"
)

// LoadEnv 读取 .env；不存在就算了，容器里直接用环境变量
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment variables")
	}
}
