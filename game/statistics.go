package game

// Sum ...
func Sum(data []float64) (result float64) {
	for _, v := range data {
		result += v
	}
	return result
}

// Mean ...
func Mean(data []float64) float64 {
	count := float64(len(data))
	if count == 0 {
		return 0
	}
	return Sum(data) / count
}

// Max returns the largest value in data, or zero if data is empty.
func Max(data []float64) (max float64) {
	for i, v := range data {
		if i == 0 || v > max {
			max = v
		}
	}
	return max
}
