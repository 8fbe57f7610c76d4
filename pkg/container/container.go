package container

import (
	"context"
	"fmt"

	"github.com/hibiken/asynq"

	"pcstore-backend/internal/config"
	blogrepo "pcstore-backend/internal/domains/blog/repository"
	blogservice "pcstore-backend/internal/domains/blog/service"
	buildrepo "pcstore-backend/internal/domains/build/repository"
	buildservice "pcstore-backend/internal/domains/build/service"
	builderservice "pcstore-backend/internal/domains/builder/service"
	cartrepo "pcstore-backend/internal/domains/cart/repository"
	cartservice "pcstore-backend/internal/domains/cart/service"
	courserepo "pcstore-backend/internal/domains/course/repository"
	courseservice "pcstore-backend/internal/domains/course/service"
	orderrepo "pcstore-backend/internal/domains/order/repository"
	orderservice "pcstore-backend/internal/domains/order/service"
	productrepo "pcstore-backend/internal/domains/product/repository"
	productservice "pcstore-backend/internal/domains/product/service"
	userrepo "pcstore-backend/internal/domains/user/repository"
	userservice "pcstore-backend/internal/domains/user/service"
	infracache "pcstore-backend/internal/infrastructure/cache"
	"pcstore-backend/internal/infrastructure/database"
	"pcstore-backend/internal/infrastructure/storage"
	"pcstore-backend/pkg/cache"
	"pcstore-backend/pkg/jwt"
	"pcstore-backend/pkg/logger"
)

// Container wires configuration, infrastructure, repositories and services
// in dependency order. Both binaries build one; the API additionally mounts
// handlers on top, the worker consumes the services directly.
type Container struct {
	Config *config.Config

	DB          *database.PostgresDB
	Cache       cache.Cache
	Storage     *storage.MinIOStorage
	JWTManager  *jwt.Manager
	AsynqClient *asynq.Client

	ProductRepo productrepo.RepositoryInterface
	BuildRepo   buildrepo.RepositoryInterface
	CartRepo    cartrepo.RepositoryInterface
	OrderRepo   orderrepo.RepositoryInterface
	UserRepo    userrepo.RepositoryInterface
	BlogRepo    blogrepo.RepositoryInterface
	CourseRepo  courserepo.RepositoryInterface

	ProductService productservice.ServiceInterface
	BuilderService builderservice.ServiceInterface
	BuildService   buildservice.ServiceInterface
	CartService    cartservice.ServiceInterface
	OrderService   orderservice.ServiceInterface
	UserService    userservice.ServiceInterface
	BlogService    blogservice.ServiceInterface
	CourseService  courseservice.ServiceInterface
}

// Options tweaks what gets wired. The worker skips the asynq client since
// it consumes tasks instead of producing them.
type Options struct {
	WithAsynqClient bool
	WithStorage     bool
}

// New builds the container: config, then infrastructure, then repositories,
// then services.
func New(ctx context.Context, cfg *config.Config, opts Options) (*Container, error) {
	c := &Container{Config: cfg}

	// Infrastructure
	db := database.NewPostgresDB(database.NewDBConfig(cfg.Database))
	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("database: %w", err)
	}
	c.DB = db

	redisCache := infracache.NewRedisCache(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	if err := redisCache.Ping(ctx); err != nil {
		return nil, fmt.Errorf("redis: %w", err)
	}
	c.Cache = redisCache

	if opts.WithStorage {
		minioStorage, err := storage.NewMinIOStorage(cfg.MinIO)
		if err != nil {
			return nil, fmt.Errorf("minio: %w", err)
		}
		c.Storage = minioStorage
	}

	c.JWTManager = jwt.NewManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry, cfg.JWT.RefreshTokenExpiry)

	if opts.WithAsynqClient {
		c.AsynqClient = asynq.NewClient(asynq.RedisClientOpt{
			Addr:     cfg.Redis.Host,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
	}

	// Repositories
	c.ProductRepo = productrepo.NewPostgresRepository(db.Pool, c.Cache)
	c.BuildRepo = buildrepo.NewPostgresRepository(db.Pool)
	c.CartRepo = cartrepo.NewPostgresRepository(db.Pool)
	c.OrderRepo = orderrepo.NewPostgresRepository(db.Pool)
	c.UserRepo = userrepo.NewPostgresRepository(db.Pool)
	c.BlogRepo = blogrepo.NewPostgresRepository(db.Pool)
	c.CourseRepo = courserepo.NewPostgresRepository(db.Pool)

	// Services
	c.ProductService = productservice.NewProductService(c.ProductRepo, c.Cache, c.Storage)
	c.BuilderService = builderservice.NewBuilderService(c.ProductRepo, c.BuildRepo, c.Cache)
	c.BuildService = buildservice.NewBuildService(c.BuildRepo, c.AsynqClient)
	c.CartService = cartservice.NewCartService(c.CartRepo, c.ProductRepo)
	c.OrderService = orderservice.NewOrderService(c.OrderRepo, c.CartRepo)
	c.UserService = userservice.NewUserService(c.UserRepo, c.JWTManager)
	c.BlogService = blogservice.NewBlogService(c.BlogRepo)
	c.CourseService = courseservice.NewCourseService(c.CourseRepo)

	logger.Info("container initialized", map[string]interface{}{
		"env": cfg.App.Environment,
	})
	return c, nil
}

// Close releases held connections
func (c *Container) Close() {
	if c.AsynqClient != nil {
		if err := c.AsynqClient.Close(); err != nil {
			logger.Error("close asynq client", err)
		}
	}
	if c.DB != nil && c.DB.Pool != nil {
		c.DB.Pool.Close()
	}
}
