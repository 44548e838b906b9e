package calc

import (
	"context"
)

// Go cannot pass an uninstantiated generic function, so every float method
// receives the float32 and float64 instantiations and picks one per call.

func unary(f32 func(float32) float32, f64 func(float64) float64) HandlerFunc {
	return func(_ context.Context, c *Call) (interface{}, error) {
		x, err := c.Float(0)
		if err != nil {
			return nil, err
		}
		single, err := c.Single()
		if err != nil {
			return nil, err
		}
		if single {
			return f32(float32(x)), nil
		}
		return f64(x), nil
	}
}

func binary(f32 func(float32, float32) float32, f64 func(float64, float64) float64) HandlerFunc {
	return func(_ context.Context, c *Call) (interface{}, error) {
		xs, err := c.Floats()
		if err != nil {
			return nil, err
		}
		single, err := c.Single()
		if err != nil {
			return nil, err
		}
		if single {
			return f32(float32(xs[0]), float32(xs[1])), nil
		}
		return f64(xs[0], xs[1]), nil
	}
}

func ternary(f32 func(float32, float32, float32) float32, f64 func(float64, float64, float64) float64) HandlerFunc {
	return func(_ context.Context, c *Call) (interface{}, error) {
		xs, err := c.Floats()
		if err != nil {
			return nil, err
		}
		single, err := c.Single()
		if err != nil {
			return nil, err
		}
		if single {
			return f32(float32(xs[0]), float32(xs[1]), float32(xs[2])), nil
		}
		return f64(xs[0], xs[1], xs[2]), nil
	}
}

func predicate(f32 func(float32) bool, f64 func(float64) bool) HandlerFunc {
	return func(_ context.Context, c *Call) (interface{}, error) {
		x, err := c.Float(0)
		if err != nil {
			return nil, err
		}
		single, err := c.Single()
		if err != nil {
			return nil, err
		}
		if single {
			return f32(float32(x)), nil
		}
		return f64(x), nil
	}
}

func predicate3(f32 func(float32, float32, float32) bool, f64 func(float64, float64, float64) bool) HandlerFunc {
	return func(_ context.Context, c *Call) (interface{}, error) {
		xs, err := c.Floats()
		if err != nil {
			return nil, err
		}
		single, err := c.Single()
		if err != nil {
			return nil, err
		}
		if single {
			return f32(float32(xs[0]), float32(xs[1]), float32(xs[2])), nil
		}
		return f64(xs[0], xs[1], xs[2]), nil
	}
}

// bitFuncs holds one bit operation instantiated for every width
type bitFuncs struct {
	u8  func(uint8) uint8
	u16 func(uint16) uint16
	u32 func(uint32) uint32
	u64 func(uint64) uint64
}

func (f bitFuncs) apply(x uint64, width int) uint64 {
	switch width {
	case 8:
		return uint64(f.u8(uint8(x)))
	case 16:
		return uint64(f.u16(uint16(x)))
	case 32:
		return uint64(f.u32(uint32(x)))
	default:
		return f.u64(x)
	}
}

// bitFuncsN is bitFuncs for operations taking a count
type bitFuncsN struct {
	u8  func(uint8, int) uint8
	u16 func(uint16, int) uint16
	u32 func(uint32, int) uint32
	u64 func(uint64, int) uint64
}

func (f bitFuncsN) apply(x uint64, k, width int) uint64 {
	switch width {
	case 8:
		return uint64(f.u8(uint8(x), k))
	case 16:
		return uint64(f.u16(uint16(x), k))
	case 32:
		return uint64(f.u32(uint32(x), k))
	default:
		return f.u64(x, k)
	}
}

func bitHandler(f bitFuncs) HandlerFunc {
	return func(_ context.Context, c *Call) (interface{}, error) {
		width, err := c.Width()
		if err != nil {
			return nil, err
		}
		x, err := c.Uint(0, width)
		if err != nil {
			return nil, err
		}
		return Bits{Value: f.apply(x, width), Width: width}, nil
	}
}

// rotateHandler rotates by one, or by the optional second argument
func rotateHandler(one bitFuncs, n bitFuncsN) HandlerFunc {
	return func(ctx context.Context, c *Call) (interface{}, error) {
		if c.NArgs() == 1 {
			return bitHandler(one)(ctx, c)
		}
		width, err := c.Width()
		if err != nil {
			return nil, err
		}
		x, err := c.Uint(0, width)
		if err != nil {
			return nil, err
		}
		k, err := c.Int(1)
		if err != nil {
			return nil, err
		}
		return Bits{Value: n.apply(x, int(k%int64(width)), width), Width: width}, nil
	}
}
