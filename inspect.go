package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/matt-g-everett/ledanim/anim"
	"github.com/spf13/cobra"
)

// inspectCap bounds the sampled range of animations that never end.
const inspectCap = 10 * time.Second

func inspectAnimation(cmd *cobra.Command, args []string) error {
	if step <= 0 {
		return fmt.Errorf("--step must be positive, got %s", step)
	}

	a, err := anim.LoadFile(args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	hint := a.ComputeDurationHint()
	fmt.Fprintf(out, "duration: %s\n", a.Duration())
	fmt.Fprintf(out, "start offset: %s\n", a.StartOffset())
	if hint == anim.Infinite {
		fmt.Fprintln(out, "duration hint: infinite")
	} else {
		fmt.Fprintf(out, "duration hint: %s\n", hint)
	}
	fmt.Fprintf(out, "has alpha: %t\n\n", a.HasAlpha())

	end := until
	if end <= 0 {
		end = a.StartOffset() + hint
		if hint == anim.Infinite || end > inspectCap {
			end = inspectCap
		}
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TIME\tVALID\tALPHA\tMATRIX")
	var t anim.Transform
	for elapsed := time.Duration(0); elapsed <= end; elapsed += step {
		t.Clear()
		valid := a.Transformation(elapsed, &t)
		m := t.Matrix
		fmt.Fprintf(w, "%s\t%t\t%.3f\t[%.3f %.3f %.3f; %.3f %.3f %.3f]\n",
			elapsed, valid, t.Alpha, m[0], m[1], m[2], m[3], m[4], m[5])
	}
	return w.Flush()
}
