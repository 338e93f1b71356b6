package config

import (
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// DatabaseMode has the following constants: DatabaseModePostgres
type DatabaseMode string

const (
	DatabaseModePostgres DatabaseMode = "postgres"
)

// CacheMode has the following constants: CacheModeMemory, CacheModeRedis
type CacheMode string

const (
	CacheModeMemory CacheMode = "memory"
	CacheModeRedis  CacheMode = "redis"
)

// AiProvider has the following constants: AiProviderAnthropic, AiProviderOpenAi
type AiProvider string

const (
	AiProviderAnthropic AiProvider = "anthropic"
	AiProviderOpenAi    AiProvider = "openai"
)

// SecretsMode has the following constants: SecretsModeConfig, SecretsModeVault
type SecretsMode string

const (
	SecretsModeConfig SecretsMode = "config"
	SecretsModeVault  SecretsMode = "vault"
)

// RendererMode has the following constants: RendererModeRod, RendererModeNone
type RendererMode string

const (
	RendererModeRod  RendererMode = "rod"
	RendererModeNone RendererMode = "none"
)

// StorageMode has the following constants: StorageModeDirectory, StorageModeS3
type StorageMode string

const (
	StorageModeDirectory StorageMode = "directory"
	StorageModeS3        StorageMode = "s3"
)

// MailMode has the following constants: MailModeNone, MailModeSmtp, MailModeSes
type MailMode string

const (
	MailModeNone MailMode = "none"
	MailModeSmtp MailMode = "smtp"
	MailModeSes  MailMode = "ses"
)

// QueueMode has the following constants: QueueModeNoop, QueueModeInProcess
type QueueMode string

const (
	QueueModeNoop      QueueMode = "noop"
	QueueModeInProcess QueueMode = "in-process"
)

// LeaderElectionMode has the following constants: LeaderElectionModeNone, LeaderElectionModeRaft
type LeaderElectionMode string

const (
	LeaderElectionModeNone LeaderElectionMode = "none"
	LeaderElectionModeRaft LeaderElectionMode = "raft"
)

type ServerConfig struct {
	ExternalUrl    string
	Host           string
	Port           int
	AllowedOrigins []string
}

type PostgresConfig struct {
	Database string
	Host     string
	Port     int
	Username string
	Password string
	SslMode  string
}

type RedisConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	Database int
}

type AnthropicConfig struct {
	ApiKey    string
	BaseUrl   string
	Model     string
	MaxTokens int
	Version   string
}

type OpenAiConfig struct {
	ApiKey    string
	BaseUrl   string
	Model     string
	MaxTokens int
}

type AiConfig struct {
	DefaultProvider AiProvider
	Anthropic       AnthropicConfig
	OpenAi          OpenAiConfig
	Timeout         time.Duration
	CacheTtl        time.Duration
}

type NounProjectConfig struct {
	ApiKey    string
	ApiSecret string
	BaseUrl   string
}

type VaultConfig struct {
	Address string
	Token   string
	Mount   string
	Path    string
}

type RendererConfig struct {
	Mode       RendererMode
	BrowserBin string
	ControlUrl string
	NoSandbox  bool
	Timeout    time.Duration
}

type StorageConfig struct {
	Mode      StorageMode
	Directory struct {
		Path string
	}
	S3 struct {
		Bucket       string
		Region       string
		Endpoint     string
		UsePathStyle bool
	}
	PublicBaseUrl string
}

type MailConfig struct {
	Mode     MailMode
	From     string
	FromName string
	Smtp     struct {
		Host     string
		Port     int
		Username string
		Password string
	}
	Ses struct {
		Region  string
		Profile string
	}
}

type LeaderElectionConfig struct {
	Mode LeaderElectionMode
	Raft struct {
		Id          string
		Host        string
		Port        int
		InitiatorId string
		Nodes       []struct {
			Id      string
			Address string
		}
	}
}

type LoggingConfig struct {
	// Level is a zap level name, e.g. debug, info or warn.
	Level string
	// Json switches from the console encoder to json lines.
	Json bool
}

type Config struct {
	Server   ServerConfig
	Logging  LoggingConfig
	Frontend struct {
		ExternalUrl string
	}
	Database struct {
		Mode     DatabaseMode
		Postgres PostgresConfig
	}
	Cache struct {
		Mode  CacheMode
		Redis RedisConfig
	}
	Authentication struct {
		JwtSecret     string
		Issuer        string
		Audience      string
		InitialAdmins []string
	}
	Ai    AiConfig
	Icons struct {
		NounProject NounProjectConfig
	}
	Secrets struct {
		Mode  SecretsMode
		Vault VaultConfig
	}
	Renderer       RendererConfig
	Storage        StorageConfig
	Mail           MailConfig
	Queue          struct{ Mode QueueMode }
	LeaderElection LeaderElectionConfig
}

var configFilePath string
var environment string
var C Config

func IsProduction() bool {
	return environment == "PRODUCTION"
}

func Init() {
	// read flags (read config file path)
	readFlags()

	// read values from different sources (env vars & files)
	readConfigFile()
}

var k = koanf.New(".")

func readConfigFile() {
	if configFilePath != "" {
		if err := k.Load(file.Provider(configFilePath), yaml.Parser()); err != nil {
			log.Fatalf("error loading config from file: %v", err)
		}
	}

	err := k.Load(env.Provider(".", env.Opt{
		Prefix: "LISTLINE_",
		TransformFunc: func(k, v string) (string, any) {
			k = strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(k, "LISTLINE_")), "_", ".")

			if strings.Contains(v, " ") {
				return k, strings.Split(v, " ")
			}

			return k, v
		},
	}), nil)
	if err != nil {
		log.Fatalf("error loading config from env: %v", err)
	}

	err = k.Unmarshal("", &C)
	if err != nil {
		log.Fatalf("error unmarshalling config: %v", err)
	}

	setDefaultsOrPanic()
}

func setDefaultsOrPanic() {
	setServerDefaultsOrPanic()
	setLoggingDefaults()
	setFrontendDefaultsOrPanic()
	setDatabaseDefaultsOrPanic()
	setCacheDefaultsOrPanic()
	setAuthenticationDefaultsOrPanic()
	setAiDefaultsOrPanic()
	setIconDefaultsOrPanic()
	setSecretsDefaultsOrPanic()
	setRendererDefaultsOrPanic()
	setStorageDefaultsOrPanic()
	setMailDefaultsOrPanic()
	setQueueDefaultsOrPanic()
	setLeaderElectionDefaultsOrPanic()
}

func setLoggingDefaults() {
	if C.Logging.Level == "" {
		C.Logging.Level = "info"
		if !IsProduction() {
			C.Logging.Level = "debug"
		}
	}

	if IsProduction() {
		C.Logging.Json = true
	}
}

func setServerDefaultsOrPanic() {
	if C.Server.Host == "" {
		if IsProduction() {
			panic("missing server hostname in config")
		}

		C.Server.Host = "localhost"
	}

	if C.Server.Port == 0 {
		C.Server.Port = 8080
	}

	if C.Server.ExternalUrl == "" {
		if IsProduction() {
			panic("missing external url")
		}

		C.Server.ExternalUrl = fmt.Sprintf("http://%s:%d", C.Server.Host, C.Server.Port)
	}

	if len(C.Server.AllowedOrigins) == 0 {
		if IsProduction() {
			panic("missing allowed origins")
		}

		C.Server.AllowedOrigins = []string{"*", "http://localhost:3000"}
	}
}

func setFrontendDefaultsOrPanic() {
	if C.Frontend.ExternalUrl == "" {
		if IsProduction() {
			panic("missing frontend external url")
		}
		C.Frontend.ExternalUrl = "http://localhost:3000"
	}
}

func setDatabaseDefaultsOrPanic() {
	if C.Database.Mode == "" {
		C.Database.Mode = DatabaseModePostgres
	}

	switch C.Database.Mode {
	case DatabaseModePostgres:
		setPostgresDefaultsOrPanic()

	default:
		panic("database mode missing or not supported")
	}
}

func setPostgresDefaultsOrPanic() {
	if C.Database.Postgres.Database == "" {
		C.Database.Postgres.Database = "listline"
	}

	if C.Database.Postgres.Username == "" {
		panic("missing postgres username")
	}

	if C.Database.Postgres.Port == 0 {
		C.Database.Postgres.Port = 5432
	}

	if C.Database.Postgres.Host == "" {
		panic("missing postgres host")
	}

	if C.Database.Postgres.SslMode == "" {
		C.Database.Postgres.SslMode = "enable"
	}

	if C.Database.Postgres.Password == "" {
		panic("missing postgres password")
	}
}

func setCacheDefaultsOrPanic() {
	if C.Cache.Mode == "" {
		C.Cache.Mode = CacheModeMemory
	}

	switch C.Cache.Mode {
	case CacheModeMemory:
		break

	case CacheModeRedis:
		setRedisDefaultsOrPanic()

	default:
		panic("cache mode missing or not supported")
	}
}

func setRedisDefaultsOrPanic() {
	if C.Cache.Redis.Host == "" {
		if IsProduction() {
			panic("missing redis host")
		}

		C.Cache.Redis.Host = "localhost"
	}

	if C.Cache.Redis.Port == 0 {
		C.Cache.Redis.Port = 6379
	}
}

func setAuthenticationDefaultsOrPanic() {
	if C.Authentication.JwtSecret == "" {
		panic("missing authentication jwt secret")
	}

	if C.Authentication.Audience == "" {
		C.Authentication.Audience = "authenticated"
	}

	for i, email := range C.Authentication.InitialAdmins {
		C.Authentication.InitialAdmins[i] = strings.ToLower(strings.TrimSpace(email))
	}
}

func setAiDefaultsOrPanic() {
	if C.Ai.DefaultProvider == "" {
		C.Ai.DefaultProvider = AiProviderAnthropic
	}

	if C.Ai.DefaultProvider != AiProviderAnthropic && C.Ai.DefaultProvider != AiProviderOpenAi {
		panic("ai default provider not supported")
	}

	if C.Ai.Anthropic.BaseUrl == "" {
		C.Ai.Anthropic.BaseUrl = "https://api.anthropic.com/v1"
	}

	if C.Ai.Anthropic.Model == "" {
		C.Ai.Anthropic.Model = "claude-sonnet-4-20250514"
	}

	if C.Ai.Anthropic.MaxTokens == 0 {
		C.Ai.Anthropic.MaxTokens = 8000
	}

	if C.Ai.Anthropic.Version == "" {
		C.Ai.Anthropic.Version = "2023-06-01"
	}

	if C.Ai.OpenAi.BaseUrl == "" {
		C.Ai.OpenAi.BaseUrl = "https://api.openai.com/v1"
	}

	if C.Ai.OpenAi.Model == "" {
		C.Ai.OpenAi.Model = "gpt-4o"
	}

	if C.Ai.OpenAi.MaxTokens == 0 {
		C.Ai.OpenAi.MaxTokens = 1024
	}

	if C.Ai.Timeout == 0 {
		C.Ai.Timeout = 120 * time.Second
	}

	if C.Ai.CacheTtl < 0 {
		panic("ai cache ttl must not be negative")
	}
}

func setIconDefaultsOrPanic() {
	if C.Icons.NounProject.BaseUrl == "" {
		C.Icons.NounProject.BaseUrl = "https://api.thenounproject.com/v2"
	}
}

func setSecretsDefaultsOrPanic() {
	if C.Secrets.Mode == "" {
		C.Secrets.Mode = SecretsModeConfig
	}

	switch C.Secrets.Mode {
	case SecretsModeConfig:
		break

	case SecretsModeVault:
		if C.Secrets.Vault.Address == "" {
			panic("missing vault address")
		}

		if C.Secrets.Vault.Token == "" {
			panic("missing vault token")
		}

		if C.Secrets.Vault.Mount == "" {
			C.Secrets.Vault.Mount = "secret"
		}

		if C.Secrets.Vault.Path == "" {
			C.Secrets.Vault.Path = "listline"
		}

	default:
		panic("secrets mode not supported")
	}
}

func setRendererDefaultsOrPanic() {
	if C.Renderer.Mode == "" {
		C.Renderer.Mode = RendererModeRod
	}

	if C.Renderer.Mode != RendererModeRod && C.Renderer.Mode != RendererModeNone {
		panic("renderer mode not supported")
	}

	if C.Renderer.Timeout == 0 {
		C.Renderer.Timeout = 60 * time.Second
	}
}

func setStorageDefaultsOrPanic() {
	if C.Storage.Mode == "" {
		C.Storage.Mode = StorageModeDirectory
	}

	switch C.Storage.Mode {
	case StorageModeDirectory:
		if C.Storage.Directory.Path == "" {
			if IsProduction() {
				panic("missing storage directory path")
			}
			C.Storage.Directory.Path = "./data/files"
		}

		if C.Storage.PublicBaseUrl == "" {
			C.Storage.PublicBaseUrl = strings.TrimSuffix(C.Server.ExternalUrl, "/") + "/files"
		}

	case StorageModeS3:
		if C.Storage.S3.Bucket == "" {
			panic("missing s3 bucket")
		}

		if C.Storage.S3.Region == "" {
			C.Storage.S3.Region = "us-east-1"
		}

		if C.Storage.PublicBaseUrl == "" {
			C.Storage.PublicBaseUrl = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", C.Storage.S3.Bucket, C.Storage.S3.Region)
		}

	default:
		panic("storage mode not supported")
	}

	C.Storage.PublicBaseUrl = strings.TrimSuffix(C.Storage.PublicBaseUrl, "/")
}

func setMailDefaultsOrPanic() {
	if C.Mail.Mode == "" {
		C.Mail.Mode = MailModeNone
	}

	if C.Mail.From == "" {
		C.Mail.From = "no-reply@listline.home.arpa"
	}

	if C.Mail.FromName == "" {
		C.Mail.FromName = "Listline"
	}

	switch C.Mail.Mode {
	case MailModeNone:
		break

	case MailModeSmtp:
		if C.Mail.Smtp.Host == "" {
			panic("missing smtp host")
		}

		if C.Mail.Smtp.Port == 0 {
			C.Mail.Smtp.Port = 587
		}

	case MailModeSes:
		if C.Mail.Ses.Region == "" {
			C.Mail.Ses.Region = "us-east-1"
		}

	default:
		panic("mail mode not supported")
	}
}

func setQueueDefaultsOrPanic() {
	if C.Queue.Mode == "" {
		C.Queue.Mode = QueueModeInProcess
	}

	if C.Queue.Mode != QueueModeNoop && C.Queue.Mode != QueueModeInProcess {
		panic("queue mode not supported")
	}
}

func setLeaderElectionDefaultsOrPanic() {
	if C.LeaderElection.Mode == "" {
		C.LeaderElection.Mode = LeaderElectionModeNone
	}

	switch C.LeaderElection.Mode {
	case LeaderElectionModeNone:
		break

	case LeaderElectionModeRaft:
		if C.LeaderElection.Raft.Id == "" {
			panic("missing raft node id")
		}

		if C.LeaderElection.Raft.Host == "" {
			C.LeaderElection.Raft.Host = "0.0.0.0"
		}

		if C.LeaderElection.Raft.Port == 0 {
			C.LeaderElection.Raft.Port = 7000
		}

		if len(C.LeaderElection.Raft.Nodes) == 0 {
			panic("missing raft nodes")
		}

	default:
		panic("leader election mode not supported")
	}
}

func readFlags() {
	flag.StringVar(&configFilePath, "config", "", "The path for the config file.")
	flag.StringVar(&environment, "environment", "PRODUCTION", "The environment that this application is running in (can be PRODUCTION or DEVELOPMENT).")
	flag.Parse()
}
