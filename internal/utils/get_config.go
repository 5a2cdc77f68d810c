package utils

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

type Config struct {
	// Database configuration
	DBUser     string `yaml:"DB_USER"`
	DBName     string `yaml:"DB_NAME"`
	DBPassword string `yaml:"DB_PASSWORD"`
	DBPort     string `yaml:"DB_PORT"`
	DBHost     string `yaml:"DB_HOST"`

	// Auth keys
	JWTSecret           string `yaml:"JWT_SECRET"`
	EncryptionSecretKey string `yaml:"ENCRYPTION_SECRET_KEY"`

	// AWS S3 configuration
	AWSS3Bucket  string `yaml:"AWS_S3_BUCKET"`
	AWSS3Region  string `yaml:"AWS_S3_REGION"`
	AWSAccessKey string `yaml:"AWS_ACCESS_KEY"`
	AWSSecretKey string `yaml:"AWS_SECRET_KEY"`

	// Base URL recipe image links must start with
	AssetBaseURL string `yaml:"ASSET_BASE_URL"`

	AppPort string `yaml:"APP_PORT"`
}

var config Config

func LoadConfig() {
	// .env values only fill in what the environment does not already set
	_ = godotenv.Load()

	file, err := os.ReadFile("config.yaml")
	if err != nil {
		log.Printf("config.yaml not read, falling back to environment: %s\n", err)
		return
	}

	if err = yaml.Unmarshal(file, &config); err != nil {
		log.Printf("Error parsing YAML file: %s\n", err)
	}
}

func GetConfig(key string) string {
	var value string
	switch key {
	case "DB_USER":
		value = config.DBUser
	case "DB_NAME":
		value = config.DBName
	case "DB_PASSWORD":
		value = config.DBPassword
	case "DB_PORT":
		value = config.DBPort
	case "DB_HOST":
		value = config.DBHost
	case "JWT_SECRET":
		value = config.JWTSecret
	case "ENCRYPTION_SECRET_KEY":
		value = config.EncryptionSecretKey
	case "AWS_S3_BUCKET":
		value = config.AWSS3Bucket
	case "AWS_S3_REGION":
		value = config.AWSS3Region
	case "AWS_ACCESS_KEY":
		value = config.AWSAccessKey
	case "AWS_SECRET_KEY":
		value = config.AWSSecretKey
	case "ASSET_BASE_URL":
		value = config.AssetBaseURL
	case "APP_PORT":
		value = config.AppPort
	}

	if value == "" {
		value = os.Getenv(key)
	}
	return value
}
