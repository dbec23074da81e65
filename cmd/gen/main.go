package main

import (
	"vitrina/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.BusinessProfileModel{},
		model.BusinessOfferingModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
