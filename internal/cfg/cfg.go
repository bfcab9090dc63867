package cfg

import (
	"os"
	"strconv"
	"time"

	"github.com/aidajassomex/finca57/pkg/e"
	"github.com/aidajassomex/finca57/pkg/logger"
	"github.com/jimlawless/whereami"
)

// CartBackend — хранилище корзин сессий.
type CartBackend string

const (
	CartBackendMemory CartBackend = "memory"
	CartBackendRedis  CartBackend = "redis"
)

type Config struct {
	Http    *HTTPConfig
	Store   *StoreCfg
	Catalog *CatalogCfg
	Cart    *CartCfg
	Redis   *RedisCfg
}

type HTTPConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type StoreCfg struct {
	WhatsAppPhone string // Номер WhatsApp магазина, нецифровые символы отбрасываются при построении ссылки
	BranchName    string // Название филиала (sucursal) для блока самовывоза в сообщении заказа
}

type CatalogCfg struct {
	Source          string        // URL или путь к products.json
	FetchTimeout    time.Duration // Таймаут одной загрузки каталога
	RefreshInterval time.Duration // 0 — каталог загружается один раз при старте
}

type CartCfg struct {
	Backend CartBackend
	TTL     time.Duration // Время жизни корзины сессии
}

type RedisCfg struct {
	Addr        string
	Password    string
	User        string
	DB          int
	MaxRetries  int
	DialTimeout time.Duration
	Timeout     time.Duration
}

// Load безопасно загружает конфигурацию и возвращает ошибку в случае неудачи.
func Load(log logger.Logger) (*Config, error) {
	http, err := loadHTTPConfig(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	catalog, err := loadCatalogCfg(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	cart, err := loadCartCfg(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	redis, err := loadRedisCfg(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return &Config{
		Http:    http,
		Store:   loadStoreCfg(),
		Catalog: catalog,
		Cart:    cart,
		Redis:   redis,
	}, nil
}

func loadHTTPConfig(log logger.Logger) (*HTTPConfig, error) {
	const (
		defaultPort         = "8080"
		defaultReadTimeout  = 5 * time.Second
		defaultWriteTimeout = 10 * time.Second
		defaultIdleTimeout  = 60 * time.Second
	)

	port := getEnvOrDefault("HTTP_PORT", defaultPort)

	readTimeout, err := parseDurationEnv("HTTP_READ_TIMEOUT", defaultReadTimeout)
	if err != nil {
		log.Errorf(err, "invalid HTTP_READ_TIMEOUT")
		return nil, err
	}

	writeTimeout, err := parseDurationEnv("HTTP_WRITE_TIMEOUT", defaultWriteTimeout)
	if err != nil {
		log.Errorf(err, "invalid HTTP_WRITE_TIMEOUT")
		return nil, err
	}

	idleTimeout, err := parseDurationEnv("KEEP_ALIVE", defaultIdleTimeout)
	if err != nil {
		log.Errorf(err, "invalid KEEP_ALIVE")
		return nil, err
	}

	return &HTTPConfig{
		Port:         port,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}, nil
}

func loadStoreCfg() *StoreCfg {
	const (
		// Запасной номер из оригинальной витрины
		defaultPhone  = "+5215511950646"
		defaultBranch = "Sucursal Oriente"
	)

	return &StoreCfg{
		WhatsAppPhone: getEnvOrDefault("WHATSAPP_NUMBER", defaultPhone),
		BranchName:    getEnvOrDefault("BRANCH_NAME", defaultBranch),
	}
}

func loadCatalogCfg(log logger.Logger) (*CatalogCfg, error) {
	const (
		defaultSource       = "products.json"
		defaultFetchTimeout = 10 * time.Second
	)

	fetchTimeout, err := parseDurationEnv("CATALOG_FETCH_TIMEOUT", defaultFetchTimeout)
	if err != nil {
		log.Errorf(err, "invalid CATALOG_FETCH_TIMEOUT")
		return nil, err
	}

	// 0 отключает периодическое обновление: каталог грузится один раз при старте
	refresh, err := parseDurationEnv("CATALOG_REFRESH_INTERVAL", 0)
	if err != nil {
		log.Errorf(err, "invalid CATALOG_REFRESH_INTERVAL")
		return nil, err
	}

	return &CatalogCfg{
		Source:          getEnvOrDefault("CATALOG_SOURCE", defaultSource),
		FetchTimeout:    fetchTimeout,
		RefreshInterval: refresh,
	}, nil
}

func loadCartCfg(log logger.Logger) (*CartCfg, error) {
	const (
		defaultBackend = CartBackendMemory
		defaultTTL     = 30 * time.Minute
	)

	backend := CartBackend(getEnvOrDefault("CART_BACKEND", string(defaultBackend)))
	switch backend {
	case CartBackendMemory, CartBackendRedis:
	default:
		log.Errorf(e.ErrUnknownCartBackend, "invalid CART_BACKEND: %s", backend)
		return nil, e.Wrap(string(backend), e.ErrUnknownCartBackend)
	}

	ttl, err := parseDurationEnv("CART_TTL", defaultTTL)
	if err != nil {
		log.Errorf(err, "invalid CART_TTL")
		return nil, err
	}

	return &CartCfg{
		Backend: backend,
		TTL:     ttl,
	}, nil
}

func loadRedisCfg(log logger.Logger) (*RedisCfg, error) {
	const (
		defaultAddr         = "localhost:6379"
		defaultDB           = 0
		defaultMaxRetries   = 3
		defaultDialTimeout  = 5 * time.Second
		defaultReadTimeout  = 3 * time.Second
		defaultWriteTimeout = 3 * time.Second
	)

	addr := getEnvOrDefault("REDIS_ADDR", defaultAddr)
	password := getEnv("REDIS_PASSWORD")
	user := getEnv("REDIS_USER")

	dbStr := getEnvOrDefault("REDIS_DB_ID", strconv.Itoa(defaultDB))
	db, err := strconv.Atoi(dbStr)
	if err != nil {
		log.Errorf(err, "invalid REDIS_DB_ID")
		return nil, err
	}

	maxRetries, err := parseIntEnv("MAX_RETRIES", defaultMaxRetries)
	if err != nil {
		log.Errorf(err, "invalid MAX_RETRIES")
		return nil, err
	}

	dialTimeout, err := parseDurationEnv("DIAL_TIMEOUT", defaultDialTimeout)
	if err != nil {
		log.Errorf(err, "invalid DIAL_TIMEOUT")
		return nil, err
	}

	readTimeout, err := parseDurationEnv("READ_TIMEOUT", defaultReadTimeout)
	if err != nil {
		log.Errorf(err, "invalid READ_TIMEOUT")
		return nil, err
	}

	writeTimeout, err := parseDurationEnv("WRITE_TIMEOUT", defaultWriteTimeout)
	if err != nil {
		log.Errorf(err, "invalid WRITE_TIMEOUT")
		return nil, err
	}

	timeout := readTimeout
	if writeTimeout > timeout {
		timeout = writeTimeout
	}

	return &RedisCfg{
		Addr:        addr,
		Password:    password,
		User:        user,
		DB:          db,
		MaxRetries:  maxRetries,
		DialTimeout: dialTimeout,
		Timeout:     timeout,
	}, nil
}

// getEnv возвращает значение переменной окружения.
// Возвращает пустую строку, если переменная не задана.
func getEnv(key string) string {
	return os.Getenv(key)
}

// getEnvOrDefault возвращает значение переменной окружения или значение по умолчанию.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return defaultValue
}

// parseDurationEnv считывает длительность или возвращает значение по умолчанию.
func parseDurationEnv(key string, defaultValue time.Duration) (time.Duration, error) {
	if v := os.Getenv(key); v != "" {
		return time.ParseDuration(v)
	}

	return defaultValue, nil
}

func parseIntEnv(key string, defaultValue int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue, nil
	}

	intValue, err := strconv.Atoi(v)
	if err != nil {
		return defaultValue, e.ErrIncorrectEnvVariable
	}

	return intValue, nil
}
