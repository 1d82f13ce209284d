package main

import (
	"custody/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.IdentityModel{},
		model.AssetModel{},
		model.BalanceModel{},
		model.TransferModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
