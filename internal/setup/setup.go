package setup

import (
	"Listline/internal/behaviours"
	"Listline/internal/clock"
	"Listline/internal/config"
	"Listline/internal/services"
	"Listline/internal/services/ai"
	"Listline/internal/services/audit"
	"Listline/internal/services/icons"
	"Listline/internal/services/keyValue"
	"Listline/internal/services/rendering"
	"Listline/internal/services/secrets"
	"Listline/internal/services/storage"
	"context"
	"fmt"

	"github.com/The127/ioc"
)

func Clock(dc *ioc.DependencyCollection) {
	ioc.RegisterSingleton(dc, func(_ *ioc.DependencyProvider) clock.Service {
		return clock.NewClockService()
	})
}

// Services registers the external service clients. Constructors that can
// fail run eagerly so misconfiguration stops the startup.
func Services(ctx context.Context, dc *ioc.DependencyCollection, c config.Config) error {
	secretsProvider, err := secrets.NewProvider(c)
	if err != nil {
		return fmt.Errorf("creating secrets provider: %w", err)
	}
	ioc.RegisterSingleton(dc, func(_ *ioc.DependencyProvider) secrets.Provider {
		return secretsProvider
	})

	mailService, err := services.NewMailService(c.Mail)
	if err != nil {
		return fmt.Errorf("creating mail service: %w", err)
	}
	ioc.RegisterSingleton(dc, func(_ *ioc.DependencyProvider) services.MailService {
		return mailService
	})

	templateService, err := services.NewTemplateService()
	if err != nil {
		return fmt.Errorf("creating template service: %w", err)
	}
	ioc.RegisterSingleton(dc, func(_ *ioc.DependencyProvider) services.TemplateService {
		return templateService
	})

	store, err := storage.NewStore(ctx, c.Storage)
	if err != nil {
		return fmt.Errorf("creating storage: %w", err)
	}
	ioc.RegisterSingleton(dc, func(_ *ioc.DependencyProvider) storage.Store {
		return store
	})

	ioc.RegisterSingleton(dc, func(_ *ioc.DependencyProvider) behaviours.AuditLogger {
		return audit.NewConsoleAuditLogger()
	})

	ioc.RegisterSingleton(dc, func(dp *ioc.DependencyProvider) icons.Service {
		return icons.NewNounProjectService(
			c.Icons.NounProject,
			ioc.GetDependency[secrets.Provider](dp),
		)
	})

	return nil
}

func Ai(dc *ioc.DependencyCollection, c config.AiConfig) {
	ioc.RegisterSingleton(dc, func(_ *ioc.DependencyProvider) config.AiConfig {
		return c
	})
	ioc.RegisterSingleton(dc, func(dp *ioc.DependencyProvider) ai.Registry {
		secretsProvider := ioc.GetDependency[secrets.Provider](dp)
		return ai.NewRegistry(
			ai.NewAnthropicProvider(c.Anthropic, c.Timeout, secretsProvider),
			ai.NewOpenAiProvider(c.OpenAi, c.Timeout, secretsProvider),
		)
	})
}

// Renderer returns the renderer so the caller can close it on shutdown.
func Renderer(dc *ioc.DependencyCollection, c config.RendererConfig) (rendering.Renderer, error) {
	renderer, err := rendering.NewRenderer(c)
	if err != nil {
		return nil, fmt.Errorf("creating renderer: %w", err)
	}

	ioc.RegisterSingleton(dc, func(_ *ioc.DependencyProvider) rendering.Renderer {
		return renderer
	})

	return renderer, nil
}

func Caching(dc *ioc.DependencyCollection, mode config.CacheMode, redisConfig config.RedisConfig) {
	ioc.RegisterSingleton(dc, func(dp *ioc.DependencyProvider) keyValue.Store {
		switch mode {
		case config.CacheModeMemory:
			return keyValue.NewMemoryStore()

		case config.CacheModeRedis:
			return keyValue.NewRedisStore(keyValue.NewRedisClient(redisConfig))

		default:
			panic("cache mode missing or not supported")
		}
	})
}
