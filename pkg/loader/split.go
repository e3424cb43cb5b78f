package loader

// GroupFold holds the train and test row indices for one held-out group.
type GroupFold struct {
	Group string
	Train []int
	Test  []int
}

// GroupKFold yields one fold per distinct group key, in first-appearance
// order, holding out every row of that group. No group ever appears in both
// partitions of the same fold, which is what keeps correlated rows from one
// source file out of each other's validation sets.
func GroupKFold(groups []string) []GroupFold {
	order := []string{}
	byGroup := map[string][]int{}
	for i, g := range groups {
		if _, ok := byGroup[g]; !ok {
			order = append(order, g)
		}
		byGroup[g] = append(byGroup[g], i)
	}

	folds := make([]GroupFold, len(order))
	for k, g := range order {
		fold := GroupFold{Group: g, Test: byGroup[g]}
		for i, gi := range groups {
			if gi != g {
				fold.Train = append(fold.Train, i)
			}
		}
		folds[k] = fold
	}
	return folds
}
