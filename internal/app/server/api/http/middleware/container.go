package middleware

import (
	"github.com/danielgtaylor/huma/v2"
)

// Func - сигнатура мидлвари huma
type Func = func(ctx huma.Context, next func(huma.Context))

// Container собирает цепочки мидлварей для групп операций.
// Базовые мидлвари (логгер) входят в каждую цепочку и идут первыми.
type Container struct {
	base    huma.Middlewares
	pending huma.Middlewares
}

func NewContainer(base ...Func) *Container {
	return &Container{
		base: append(huma.Middlewares{}, base...),
	}
}

// Add добавляет мидлварь в текущую цепочку
func (mc *Container) Add(middleware Func) {
	mc.pending = append(mc.pending, middleware)
}

// GetAllAndClear возвращает базовые + добавленные мидлвари и очищает добавленные
func (mc *Container) GetAllAndClear() huma.Middlewares {
	result := make(huma.Middlewares, 0, len(mc.base)+len(mc.pending))
	result = append(result, mc.base...)
	result = append(result, mc.pending...)
	mc.pending = nil
	return result
}
