package config

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa a configuração da aplicação (lida via Viper do ambiente e, opcionalmente, de arquivo).
type Config struct {
	App    AppConfig
	DB     DBConfig
	JWT    JWTConfig
	HTTP   HTTPConfig
	Redis  RedisConfig
	S3     S3Config
	SMTP   SMTPConfig
	CNPJ   CNPJConfig
	ERP    ERPConfig
	Orders OrdersConfig
}

// AppConfig configuração geral.
type AppConfig struct {
	Env         string // development, staging, production
	Name        string
	BaseURL     string // usado nos links enviados por e-mail
	AutoMigrate bool
}

// DBConfig configuração do PostgreSQL.
// Se DatabaseURL não estiver vazio, é usado como connection string completa.
type DBConfig struct {
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
}

// ConnectionString devolve DATABASE_URL se definido; senão o DSN montado a partir das partes.
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DSN()
}

// DSN monta a URL de conexão com escape da senha.
func (c DBConfig) DSN() string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: fmt.Sprintf("sslmode=%s", c.SSLMode),
	}
	return u.String()
}

// JWTConfig configuração dos tokens de sessão.
type JWTConfig struct {
	Secret             string
	Expiration         int // minutos
	Issuer             string
	RecentLoginMinutes int // janela em que o login conta como "recente" para trocar e-mail
}

// HTTPConfig configuração do servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devolve o endereço de escuta (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// RedisConfig conexão com o Redis. Addr vazio = stores em memória.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// Enabled indica se há um Redis configurado.
func (c RedisConfig) Enabled() bool { return c.Addr != "" }

// S3Config armazenamento das imagens de produto.
type S3Config struct {
	Bucket          string
	Region          string
	Endpoint        string // opcional: MinIO / R2 / LocalStack
	AccessKeyID     string
	SecretAccessKey string
	PublicBaseURL   string // opcional: CDN na frente do bucket
	UsePathStyle    bool
}

// Enabled indica se o upload de imagens está disponível.
func (c S3Config) Enabled() bool { return c.Bucket != "" }

// SMTPConfig envio de e-mails. Host vazio = e-mails apenas logados.
type SMTPConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

// Enabled indica se há servidor SMTP configurado.
func (c SMTPConfig) Enabled() bool { return c.Host != "" }

// CNPJConfig consulta de CNPJ.
type CNPJConfig struct {
	Provider string // brasilapi | receitaws
	BaseURL  string // sobrescreve a URL do provedor (testes, proxy)
	Timeout  time.Duration
}

// ERPConfig integração GestãoClick.
type ERPConfig struct {
	Enabled     bool
	BaseURL     string
	AccessToken string
	SecretToken string
	StoreID     string
	Timeout     time.Duration
}

// OrdersConfig regras do ciclo de vida do pedido.
type OrdersConfig struct {
	StatusPolicy string // free (padrão) | strict
}

// Load lê a configuração das variáveis de ambiente (e opcionalmente de .env / config.env).
// As env vars têm prioridade.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig()

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:         getString(v, "APP_ENV", "development"),
			Name:        getString(v, "APP_NAME", "portal-b2b"),
			BaseURL:     strings.TrimRight(getString(v, "APP_BASE_URL", "http://localhost:3000"), "/"),
			AutoMigrate: getBool(v, "DB_AUTO_MIGRATE", false),
		},
		DB: DBConfig{
			DatabaseURL: getString(v, "DATABASE_URL", ""),
			Host:        getString(v, "DB_HOST", "localhost"),
			Port:        getInt(v, "DB_PORT", 5432),
			User:        getString(v, "DB_USER", "postgres"),
			Password:    getString(v, "DB_PASSWORD", ""),
			DBName:      getString(v, "DB_NAME", "portal_b2b"),
			SSLMode:     getString(v, "DB_SSLMODE", "disable"),
		},
		JWT: JWTConfig{
			Secret:             getString(v, "JWT_SECRET", ""),
			Expiration:         getInt(v, "JWT_EXPIRATION_MINUTES", 60*12),
			Issuer:             getString(v, "JWT_ISSUER", "portal-b2b"),
			RecentLoginMinutes: getInt(v, "RECENT_LOGIN_MINUTES", 5),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Redis: RedisConfig{
			Addr:     getString(v, "REDIS_ADDR", ""),
			Password: getString(v, "REDIS_PASSWORD", ""),
			DB:       getInt(v, "REDIS_DB", 0),
		},
		S3: S3Config{
			Bucket:          getString(v, "S3_BUCKET", ""),
			Region:          getString(v, "S3_REGION", "us-east-1"),
			Endpoint:        getString(v, "S3_ENDPOINT", ""),
			AccessKeyID:     getString(v, "S3_ACCESS_KEY_ID", ""),
			SecretAccessKey: getString(v, "S3_SECRET_ACCESS_KEY", ""),
			PublicBaseURL:   strings.TrimRight(getString(v, "S3_PUBLIC_BASE_URL", ""), "/"),
			UsePathStyle:    getBool(v, "S3_USE_PATH_STYLE", false),
		},
		SMTP: SMTPConfig{
			Host:     getString(v, "SMTP_HOST", ""),
			Port:     getInt(v, "SMTP_PORT", 587),
			User:     getString(v, "SMTP_USER", ""),
			Password: getString(v, "SMTP_PASSWORD", ""),
			From:     getString(v, "SMTP_FROM", "no-reply@portal-b2b.local"),
		},
		CNPJ: CNPJConfig{
			Provider: strings.ToLower(getString(v, "CNPJ_PROVIDER", "brasilapi")),
			BaseURL:  getString(v, "CNPJ_BASE_URL", ""),
			Timeout:  time.Duration(getInt(v, "CNPJ_TIMEOUT_SECONDS", 10)) * time.Second,
		},
		ERP: ERPConfig{
			Enabled:     getBool(v, "ENABLE_GESTAOCLICK_INTEGRATION", false),
			BaseURL:     getString(v, "GESTAOCLICK_BASE_URL", "https://api.gestaoclick.com/v1"),
			AccessToken: getString(v, "GESTAOCLICK_ACCESS_TOKEN", ""),
			SecretToken: getString(v, "GESTAOCLICK_SECRET_TOKEN", ""),
			StoreID:     getString(v, "GESTAOCLICK_STORE_ID", ""),
			Timeout:     time.Duration(getInt(v, "GESTAOCLICK_TIMEOUT_SECONDS", 15)) * time.Second,
		},
		Orders: OrdersConfig{
			StatusPolicy: strings.ToLower(getString(v, "ORDER_STATUS_POLICY", "free")),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejeita combinações que impedem a aplicação de subir.
func (c *Config) Validate() error {
	if c.JWT.Secret == "" {
		return errors.New("config: JWT_SECRET é obrigatório")
	}
	if c.JWT.Expiration <= 0 {
		return errors.New("config: JWT_EXPIRATION_MINUTES deve ser positivo")
	}
	switch c.Orders.StatusPolicy {
	case "strict", "free":
	default:
		return fmt.Errorf("config: ORDER_STATUS_POLICY inválida: %q", c.Orders.StatusPolicy)
	}
	return nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if !v.IsSet(key) {
		return def
	}
	switch v.Get(key).(type) {
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v.GetString(key)))
		if err != nil {
			return def
		}
		return n
	default:
		return v.GetInt(key)
	}
}

func getBool(v *viper.Viper, key string, def bool) bool {
	if !v.IsSet(key) {
		return def
	}
	switch raw := v.Get(key).(type) {
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(raw))
		if err != nil {
			return def
		}
		return b
	default:
		return v.GetBool(key)
	}
}
