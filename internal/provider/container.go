package provider

import (
	"github.com/VPodolski/MakiMora/internal/cache"
	"github.com/VPodolski/MakiMora/internal/config"
	"github.com/VPodolski/MakiMora/internal/logger"
	"github.com/VPodolski/MakiMora/internal/models"
	"github.com/VPodolski/MakiMora/internal/queue"
	"github.com/VPodolski/MakiMora/internal/repository"
	"github.com/VPodolski/MakiMora/internal/service"
	"github.com/VPodolski/MakiMora/internal/ws"
)

// Container wires repositories and services once per process.
type Container struct {
	Config      *config.Config
	QueueClient *queue.Client
	Hub         *ws.Hub
	Statuses    *service.StatusRegistry

	// Repositories
	OrderRepo     repository.OrderRepository
	StatusRepo    repository.StatusRepository
	UserRepo      repository.UserRepository
	LocationRepo  repository.LocationRepository
	CategoryRepo  repository.CategoryRepository
	ProductRepo   repository.ProductRepository
	InventoryRepo repository.InventoryRepository
	EarningRepo   repository.CourierEarningRepository
	DashboardRepo repository.DashboardRepository

	// Services
	AuthService      *service.AuthService
	UserService      *service.UserService
	LocationService  *service.LocationService
	CategoryService  *service.CategoryService
	ProductService   *service.ProductService
	TrackingService  *service.TrackingService
	OrderService     *service.OrderService
	InventoryService *service.InventoryService
	EarningService   *service.CourierEarningService
	DashboardService *service.DashboardService
}

// NewContainer builds the container. The database must be migrated and
// the status lookups seeded before this runs.
func NewContainer(cfg *config.Config) *Container {
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	var queueClient *queue.Client
	if cfg.Queue.Enabled {
		qc, err := queue.NewClient(&cfg.Queue)
		if err != nil {
			logger.Errorw("provider_init_queue_client_failed", "error", err)
		} else {
			queueClient = qc
		}
	}

	c := &Container{
		Config:      cfg,
		QueueClient: queueClient,
		Hub:         ws.NewHub(),
	}

	c.initRepositories()
	c.initServices()

	return c
}

func (c *Container) initRepositories() {
	db := models.DB
	c.OrderRepo = repository.NewOrderRepository(db)
	c.StatusRepo = repository.NewStatusRepository(db)
	c.UserRepo = repository.NewUserRepository(db)
	c.LocationRepo = repository.NewLocationRepository(db)
	c.CategoryRepo = repository.NewCategoryRepository(db)
	c.ProductRepo = repository.NewProductRepository(db)
	c.InventoryRepo = repository.NewInventoryRepository(db)
	c.EarningRepo = repository.NewCourierEarningRepository(db)
	c.DashboardRepo = repository.NewDashboardRepository(db)
}

func (c *Container) initServices() {
	statuses, err := service.BuildStatusRegistry(c.StatusRepo)
	if err != nil {
		logger.Errorw("provider_build_status_registry_failed", "error", err)
		panic(err)
	}
	c.Statuses = statuses

	store := cache.NewStore()

	c.AuthService = service.NewAuthService(c.UserRepo, c.Config.JWT.SecretKey, c.Config.JWT.ExpireHours)
	c.UserService = service.NewUserService(c.UserRepo, c.LocationRepo)
	c.LocationService = service.NewLocationService(c.LocationRepo)
	c.CategoryService = service.NewCategoryService(c.CategoryRepo, c.LocationRepo)
	c.ProductService = service.NewProductService(c.ProductRepo, c.CategoryRepo, c.LocationRepo, store, c.Config.Orders.MenuCacheSeconds)
	c.TrackingService = service.NewTrackingService(c.OrderRepo, c.Statuses, store, c.Config.Orders.TrackingCacheSeconds)

	var tasks service.TaskEnqueuer
	if c.QueueClient.Enabled() {
		tasks = c.QueueClient
	}
	c.OrderService = service.NewOrderService(c.OrderRepo, c.ProductRepo, c.LocationRepo, c.UserRepo, c.Statuses, c.Hub, tasks, c.Config.Orders.TimeoutCancelMinutes)

	c.InventoryService = service.NewInventoryService(c.InventoryRepo, c.LocationRepo)
	c.EarningService = service.NewCourierEarningService(c.EarningRepo, c.OrderRepo, c.UserRepo, c.Statuses)
	c.DashboardService = service.NewDashboardService(c.DashboardRepo, c.Statuses)
}
