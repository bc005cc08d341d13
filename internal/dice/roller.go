package dice

//go:generate mockgen -destination=mock/mock_roller.go -package=mockdice -source=roller.go

// Roller is the random source generation draws from.
// Injecting it keeps layouts reproducible from a seed and scriptable in tests.
type Roller interface {
	// Intn picks one of n items uniformly, returning an index in [0, n)
	Intn(n int) (int, error)

	// Between picks a uniform integer in [min, max]
	Between(min, max int) (int, error)
}
