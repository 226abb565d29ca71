package main

import (
	"loyalty/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.ShopModel{},
		model.ShopTagModel{},
		model.RewardDefinitionModel{},
		model.ClientModel{},
		model.ClientDeviceModel{},
		model.RegistrationModel{},
		model.PartnerLinkModel{},
		model.GiftModel{},
		model.RedemptionModel{},
		model.VisitModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
