package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	defaultListenAddr   = ":3000"
	defaultCacheDir     = "./cache"
	defaultDocumentName = "inventory.json"
	defaultPhotosSubdir = "photos"
	defaultMaxUploadMB  = 32
)

type Config struct {
	ListenAddr   string        `yaml:"listen_addr" json:"listen_addr"`
	CacheDir     string        `yaml:"cache_dir" json:"cache_dir"`
	DocumentName string        `yaml:"document_name" json:"document_name"`
	MaxUploadMB  int64         `yaml:"max_upload_mb" json:"max_upload_mb"`
	LogLevel     string        `yaml:"log_level" json:"log_level"`
	GCInterval   time.Duration `yaml:"gc_interval" json:"gc_interval"`
	GCTTL        time.Duration `yaml:"gc_ttl" json:"gc_ttl"`
	Photos       PhotosConfig  `yaml:"photos" json:"photos"`
}

// PhotosConfig выбирает бэкенд для файлов фотографий. Поля S3 читаются только при backend=s3.
type PhotosConfig struct {
	Backend string   `yaml:"backend" json:"backend"`
	Dir     string   `yaml:"dir" json:"dir"`
	S3      S3Config `yaml:"s3" json:"s3"`
}

type S3Config struct {
	Bucket    string `yaml:"bucket" json:"bucket"`
	Prefix    string `yaml:"prefix" json:"prefix"`
	Region    string `yaml:"region" json:"region"`
	Endpoint  string `yaml:"endpoint" json:"endpoint"`
	AccessKey string `yaml:"access_key" json:"-"`
	SecretKey string `yaml:"secret_key" json:"-"`
}

// Default возвращает конфигурацию, с которой сервис стартует без файла.
func Default() *Config {
	return &Config{
		ListenAddr:   defaultListenAddr,
		CacheDir:     defaultCacheDir,
		DocumentName: defaultDocumentName,
		MaxUploadMB:  defaultMaxUploadMB,
		LogLevel:     "info",
		GCTTL:        time.Hour,
		Photos:       PhotosConfig{Backend: "dir"},
	}
}

// Load читает YAML-конфигурацию, применяет ENV-переопределения и возвращает актуальную структуру.
// Отсутствующий файл не ошибка: берутся значения по умолчанию.
func Load() (*Config, error) {
	c := Default()

	path := getenv("CONFIG_PATH", "./config.yaml")
	b, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(b, c); err != nil {
			return nil, err
		}
	case errors.Is(err, fs.ErrNotExist):
	default:
		return nil, err
	}

	// ENV override
	if v := os.Getenv("LISTEN_ADDR"); v != "" {
		c.ListenAddr = v
	}
	if v := os.Getenv("CACHE_DIR"); v != "" {
		c.CacheDir = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("MAX_UPLOAD_MB"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			c.MaxUploadMB = n
		}
	}
	if v := os.Getenv("GC_INTERVAL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.GCInterval = d
		}
	}
	if v := os.Getenv("PHOTO_BACKEND"); v != "" {
		c.Photos.Backend = v
	}
	if v := os.Getenv("S3_BUCKET"); v != "" {
		c.Photos.S3.Bucket = v
	}
	if v := os.Getenv("S3_PREFIX"); v != "" {
		c.Photos.S3.Prefix = v
	}
	if v := os.Getenv("S3_REGION"); v != "" {
		c.Photos.S3.Region = v
	}
	if v := os.Getenv("S3_ENDPOINT"); v != "" {
		c.Photos.S3.Endpoint = v
	}
	if v := os.Getenv("S3_ACCESS_KEY"); v != "" {
		c.Photos.S3.AccessKey = v
	}
	if v := os.Getenv("S3_SECRET_KEY"); v != "" {
		c.Photos.S3.SecretKey = v
	}

	return c, nil
}

// DocumentPath — путь до JSON-документа коллекции внутри каталога кэша.
func (c *Config) DocumentPath() string {
	name := strings.TrimSpace(c.DocumentName)
	if name == "" {
		name = defaultDocumentName
	}
	return filepath.Join(c.CacheDir, name)
}

// PhotosDir — каталог фотографий; по умолчанию подкаталог кэша.
func (c *Config) PhotosDir() string {
	if d := strings.TrimSpace(c.Photos.Dir); d != "" {
		return d
	}
	return filepath.Join(c.CacheDir, defaultPhotosSubdir)
}

// MaxUploadBytes — лимит памяти под multipart-форму.
func (c *Config) MaxUploadBytes() int64 {
	if c.MaxUploadMB <= 0 {
		return defaultMaxUploadMB << 20
	}
	return c.MaxUploadMB << 20
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}

	return def
}
