package dataset

import (
	"math/rand"

	"github.com/YuminosukeSato/ridgego/pkg/errors"
)

// TrainTestSplit shuffles the pairs with the given seed and partitions them
// into train and test subsets. x/y alignment is preserved through the
// shuffle. testFrac is the fraction of samples assigned to the test set and
// must lie in [0, 1).
func TrainTestSplit(xs, ys []float64, testFrac float64, seed int64) (trainX, trainY, testX, testY []float64, err error) {
	if len(xs) != len(ys) {
		return nil, nil, nil, nil, errors.NewDimensionError("TrainTestSplit", len(xs), len(ys), 0)
	}
	if len(xs) == 0 {
		return nil, nil, nil, nil, errors.NewModelError("TrainTestSplit", "empty data", errors.ErrEmptyData)
	}
	if testFrac < 0 || testFrac >= 1 {
		return nil, nil, nil, nil, errors.NewValidationError("testFrac", "must be in [0, 1)", testFrac)
	}

	n := len(xs)
	perm := rand.New(rand.NewSource(seed)).Perm(n)

	nTest := int(float64(n) * testFrac)
	nTrain := n - nTest

	trainX = make([]float64, 0, nTrain)
	trainY = make([]float64, 0, nTrain)
	testX = make([]float64, 0, nTest)
	testY = make([]float64, 0, nTest)

	for i, idx := range perm {
		if i < nTrain {
			trainX = append(trainX, xs[idx])
			trainY = append(trainY, ys[idx])
		} else {
			testX = append(testX, xs[idx])
			testY = append(testY, ys[idx])
		}
	}

	return trainX, trainY, testX, testY, nil
}
