package stagefft

import "github.com/go-spectral/stagefft/util"

// Complex is one sample: a real/imaginary pair with the element type
// chosen at pipeline instantiation.
type Complex[T util.Float] struct {
	Re, Im T
}

// Add returns c + o.
func (c Complex[T]) Add(o Complex[T]) Complex[T] {
	return Complex[T]{c.Re + o.Re, c.Im + o.Im}
}

// Sub returns c - o.
func (c Complex[T]) Sub(o Complex[T]) Complex[T] {
	return Complex[T]{c.Re - o.Re, c.Im - o.Im}
}

// Mul returns the complex product c·o.
func (c Complex[T]) Mul(o Complex[T]) Complex[T] {
	return Complex[T]{c.Re*o.Re - c.Im*o.Im, c.Re*o.Im + c.Im*o.Re}
}

// MulJ returns c rotated by d·90°, i.e. the product (0 + d·i)·c.
func (c Complex[T]) MulJ(d T) Complex[T] {
	return Complex[T]{-d * c.Im, d * c.Re}
}

// Scale returns c with both parts multiplied by s.
func (c Complex[T]) Scale(s T) Complex[T] {
	return Complex[T]{c.Re * s, c.Im * s}
}
