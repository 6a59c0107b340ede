package controllers

import (
	"context"

	da "github.com/lintang-b-s/bestpath/pkg/datastructure"
	"github.com/lintang-b-s/bestpath/pkg/http/usecases"
)

type PlannerService interface {
	Plan(ctx context.Context, in usecases.PlanInput) (*usecases.PlanOutput, error)
	Reveal(center da.Coordinate, radius int) []da.KnownCell
	World() usecases.WorldInfo
}
