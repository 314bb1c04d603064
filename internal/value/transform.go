package value

// TransformParser transforms the output of one parser into another type.
type TransformParser[T, U any] struct {
	BaseParser[U]
	inner     Parser[T]
	transform func(T) (U, error)
}

// NewTransformParser creates a parser that transforms values from type T to type U.
func NewTransformParser[T, U any](inner Parser[T], transform func(T) (U, error)) *TransformParser[T, U] {
	return &TransformParser[T, U]{
		BaseParser: BaseParser[U]{
			ParseFunc: func(s string) (U, error) {
				v, err := inner.Parse(s)
				if err != nil {
					var zero U
					return zero, err
				}
				return transform(v)
			},
		},
		inner:     inner,
		transform: transform,
	}
}

// ParseAndValidate validates with the inner parser before transforming.
func (p *TransformParser[T, U]) ParseAndValidate(s string) (U, error) {
	v, err := p.inner.ParseAndValidate(s)
	if err != nil {
		var zero U
		return zero, err
	}
	return p.transform(v)
}

// WithTransform creates a new parser that transforms the output of an existing parser.
func WithTransform[T, U any](parser Parser[T], transform func(T) (U, error)) Parser[U] {
	return NewTransformParser(parser, transform)
}
