package samplers

// Shuffle permutes seq in place using Fisher-Yates driven by
// UniformUintBelow, so every permutation is exactly equally likely.
func Shuffle[T any](src Source, seq []T) error {
	for i := len(seq) - 1; i > 0; i-- {
		j, err := UniformUintBelow(src, uint64(i+1))
		if err != nil {
			return err
		}
		seq[i], seq[j] = seq[j], seq[i]
	}
	return nil
}
