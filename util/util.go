package util

import (
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/exp/constraints"
)

// GatherMidiPaths lists the MIDI files directly inside dir, in
// directory-listing order. Non-recursive: session files live flat in the
// source directory and anything else in there is not ours to touch.
func GatherMidiPaths(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var res []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasSuffix(name, ".mid") || strings.HasSuffix(name, ".midi") {
			res = append(res, filepath.Join(dir, name))
		}
	}
	return res, nil
}

type number interface {
	constraints.Integer | constraints.Float
}

// Mean is the arithmetic mean, 0 for an empty slice.
func Mean[A number](nums []A) float64 {
	if len(nums) == 0 {
		return 0
	}
	var total float64
	for _, v := range nums {
		total += float64(v)
	}
	return total / float64(len(nums))
}

func Min[A constraints.Ordered](num1 A, num2 A) A {
	if num1 > num2 {
		return num2
	}
	return num1
}

func Max[A constraints.Ordered](num1 A, num2 A) A {
	if num1 < num2 {
		return num2
	}
	return num1
}
