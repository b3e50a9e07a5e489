package main

import (
	"fmt"

	"github.com/ktsujino/listlens"
	"github.com/ktsujino/listlens/imaging"
)

// Run executes the diff command. A "fail" classification returns an error
// so the exit status is usable from CI scripts.
func (c *DiffCmd) Run(deps *Dependencies) error {
	result, err := imaging.CompareFiles(c.Before, c.After, c.Artifact)
	if err != nil {
		return err
	}

	status := result.Classify(c.Threshold)

	if !result.DimensionsMatch {
		fmt.Fprintf(deps.Stdout, "%s: dimensions differ\n", status)
	} else {
		fmt.Fprintf(deps.Stdout, "%s: %.2f%% differing (%d of %d pixels)\n",
			status, result.DifferencePercentage, result.DifferingPixels, result.TotalPixels)
	}
	if c.Artifact != "" && result.DimensionsMatch && !result.Identical {
		fmt.Fprintf(deps.Stdout, "Wrote %s\n", c.Artifact)
	}

	if status == listlens.DiffFail {
		return fmt.Errorf("screenshots differ beyond threshold %.2f%%", c.Threshold)
	}
	return nil
}
