package encode

type Option func(*encState)

func EncodeColors(c *Colors) Option {
	return func(es *encState) { es.colors = c }
}
