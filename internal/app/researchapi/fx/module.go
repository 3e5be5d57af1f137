package fx

import (
	"go.uber.org/fx"

	"seller-scout/internal/amazon"
	"seller-scout/internal/app/researchapi"
	"seller-scout/internal/research"
	"seller-scout/internal/router"
	"seller-scout/internal/shopee"
)

var Module = fx.Module(
	"researchapi",
	fx.Provide(
		fx.Annotate(shopee.NewClient, fx.As(new(research.Marketplace))),
		fx.Annotate(amazon.NewResolver, fx.As(new(research.Resolver))),
		research.NewService,
	),
	fx.Provide(
		router.AsRoute(researchapi.NewKeywordHandler),
		router.AsRoute(researchapi.NewCategoryHandler),
		router.AsRoute(researchapi.NewSpecialistHandler),
		router.AsRoute(researchapi.NewASINHandler),
		router.AsRoute(researchapi.NewCategoriesHandler),
	),
)
