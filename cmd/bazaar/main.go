package main

import (
	"context"
	"log/slog"
	"os"

	"bazaar/config"
	"bazaar/internal/delivery"
	"bazaar/internal/delivery/http"
	"bazaar/internal/delivery/http/middleware"
	"bazaar/internal/delivery/http/router/handler"
	"bazaar/internal/infra/auth"
	logs "bazaar/internal/infra/log"
	"bazaar/internal/infra/persistence/postgres"
	"bazaar/internal/infra/storage"
	"bazaar/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewClientRepository,
			postgres.NewRoleRepository,
			postgres.NewPermissionRepository,
			postgres.NewCategoryRepository,
			postgres.NewCurrencyRepository,
			postgres.NewProductRepository,
			postgres.NewDocumentRepository,
			postgres.NewCharacteristicRepository,
			postgres.NewCartRepository,
			postgres.NewCartItemRepository,
			postgres.NewOrderRepository,
			postgres.NewOrderItemRepository,
			postgres.NewSupportRepository,
			postgres.NewGlobalVarRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			storage.NewBlobStore,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthorizer,
			impl.NewClientService,
			impl.NewRoleService,
			impl.NewPermissionService,
			impl.NewCategoryService,
			impl.NewCurrencyService,
			impl.NewProductService,
			impl.NewDocumentService,
			impl.NewCharacteristicService,
			impl.NewCartService,
			impl.NewCartItemService,
			impl.NewOrderService,
			impl.NewSupportService,
			impl.NewGlobalVarService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewRequestIDMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewClientHandler,
			handler.NewRoleHandler,
			handler.NewPermissionHandler,
			handler.NewCategoryHandler,
			handler.NewCurrencyHandler,
			handler.NewProductHandler,
			handler.NewDocumentHandler,
			handler.NewCharacteristicHandler,
			handler.NewCartHandler,
			handler.NewCartItemHandler,
			handler.NewOrderHandler,
			handler.NewSupportHandler,
			handler.NewGlobalVarHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
