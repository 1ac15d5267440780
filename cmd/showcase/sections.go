package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/rickb777/date/v2"

	"github.com/on-the-ground/pure_ive_go/calculator"
	"github.com/on-the-ground/pure_ive_go/collection"
	"github.com/on-the-ground/pure_ive_go/config"
	"github.com/on-the-ground/pure_ive_go/directory"
	"github.com/on-the-ground/pure_ive_go/log"
	"github.com/on-the-ground/pure_ive_go/numeric"
	"github.com/on-the-ground/pure_ive_go/person"
	"github.com/on-the-ground/pure_ive_go/pure"
	"github.com/on-the-ground/pure_ive_go/shape"
	"github.com/on-the-ground/pure_ive_go/validation"
)

type section struct {
	title string
	print func(app *App, out io.Writer) error
}

var sectionsByName = map[string]section{
	"collection": {"Generic Container", printCollection},
	"shapes":     {"Shapes", printShapes},
	"calculator": {"Calculator", printCalculator},
	"validation": {"Error Handling", printValidation},
	"people":     {"People", printPeople},
	"numbers":    {"Numbers", printNumbers},
}

func (app *App) run(out io.Writer, names []string) error {
	for i, name := range names {
		s, ok := sectionsByName[name]
		if !ok {
			return fmt.Errorf("%w: %q", config.ErrUnknownSection, name)
		}
		if i > 0 {
			fmt.Fprintln(out)
		}
		fmt.Fprintf(out, "--- %s ---\n", s.title)
		if err := s.print(app, out); err != nil {
			return fmt.Errorf("section %s: %w", name, err)
		}
		log.Emit(app.Logger, log.LogDebug, "printed section", map[string]any{
			"section": name,
			"index":   i,
		})
	}
	return nil
}

func printCollection(_ *App, out io.Writer) error {
	numbers := collection.New[int]()
	for i := 1; i <= 10; i++ {
		numbers.Add(i)
	}
	even := numbers.Filter(func(n int) bool { return n%2 == 0 })
	squared := collection.Map(numbers, func(n int) int { return n * n })
	sum := collection.Fold(numbers, 0, func(acc, n int) int { return acc + n })
	avg, err := numeric.Mean(numbers.Slice())
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Original: %v\n", numbers)
	fmt.Fprintf(out, "Even numbers: %v\n", even)
	fmt.Fprintf(out, "Squared: %v\n", squared)
	fmt.Fprintf(out, "Sum: %d, Average: %.2f\n", sum, avg)

	firstFive := collection.Of(1, 2, 3, 4, 5)
	product := collection.Fold(firstFive, 1, func(acc, n int) int { return acc * n })
	fmt.Fprintf(out, "Product of %v: %d\n", firstFive, product)

	words := collection.Of("Hello", "World", "Go")
	fmt.Fprintf(out, "Container size: %d\n", words.Len())
	fmt.Fprint(out, "Container contents:")
	for w := range words.Values() {
		fmt.Fprintf(out, " %s", w)
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Long words: %v\n", words.Filter(func(s string) bool { return len(s) > 4 }))
	fmt.Fprintf(out, "Word lengths: %v\n", collection.Map(words, func(s string) int { return len(s) }))

	if removed, ok := words.Remove(0); ok {
		fmt.Fprintf(out, "Removed %q, left %v\n", removed, words)
	}
	return nil
}

func printShapes(_ *App, out io.Writer) error {
	shapes := []shape.Shape{
		shape.MustCircle(5),
		shape.MustRectangle(4, 6),
		shape.MustTriangle(3, 4, 5),
	}
	for _, s := range shapes {
		fmt.Fprintln(out, shape.Measure(s))
	}

	if _, err := shape.NewTriangle(1, 2, 10); err != nil {
		fmt.Fprintf(out, "Rejected: %v\n", err)
	}
	return nil
}

func printCalculator(_ *App, out io.Writer) error {
	calc := calculator.New().Add(10).Multiply(2).Add(5)
	fmt.Fprintf(out, "Calculator result: %.2f\n", calc.Result())
	fmt.Fprintf(out, "Calculator: %v\n", calc)

	if _, err := calc.TryDivide(0); err != nil {
		fmt.Fprintf(out, "Divide by zero: %v, still %v\n", err, calc.Divide(0))
	}
	fmt.Fprintf(out, "After reset: %v\n", calc.Reset())
	return nil
}

func printValidation(_ *App, out io.Writer) error {
	for _, email := range []string{"valid@example.com", "invalid-email", "another@valid.com"} {
		if err := validation.ValidateEmail(email); err != nil {
			fmt.Fprintf(out, "%s: Error - %v\n", email, err)
			continue
		}
		fmt.Fprintf(out, "%s: Valid\n", email)
	}

	if err := validation.ValidateAge(-5); err != nil {
		kind, _ := validation.KindOf(err)
		fmt.Fprintf(out, "Age validation failed: %v (%s)\n", err, kind)
	} else {
		fmt.Fprintln(out, "Age validation passed")
	}

	for _, divisor := range []float64{2, 0} {
		result, err := validation.SafeDivide(10, divisor)
		if err != nil {
			fmt.Fprintf(out, "Division error: %v\n", err)
			continue
		}
		fmt.Fprintf(out, "10.0 / %.1f = %.2f\n", divisor, result)
	}
	return nil
}

func printPeople(app *App, out io.Writer) error {
	dir, err := directory.New(app.Logger)
	if err != nil {
		return err
	}

	alice, err := dir.Register("Alice", 30, ptr("alice@example.com"))
	if err != nil {
		return err
	}
	bob, err := dir.Register("Bob", 25, nil)
	if err != nil {
		return err
	}
	carolAge := person.AgeOn(date.New(1990, 6, 15), app.Today())
	if _, err := dir.Register("Carol", carolAge, ptr("carol@example.com")); err != nil {
		return err
	}

	fmt.Fprintf(out, "Person 1: %v\n", alice)
	fmt.Fprintf(out, "Person 2: %v\n", bob)
	fmt.Fprintf(out, "Person 1 greeting: %s\n", alice.Greet())
	fmt.Fprintf(out, "Is person 1 adult? %t\n", alice.IsAdult())

	bob, err = dir.Update(bob.ID, (*person.Person).CelebrateBirthday)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "After birthday: %v\n", bob)

	if _, err := dir.Register("Mallory", 40, ptr("ALICE@example.com")); err != nil {
		fmt.Fprintf(out, "Rejected: %v\n", err)
	}

	everyone, err := dir.All()
	if err != nil {
		return err
	}
	names := make([]string, 0, len(everyone))
	for _, p := range everyone {
		names = append(names, p.Name)
	}
	fmt.Fprintf(out, "Registered %d: %s\n", dir.Registered(), strings.Join(names, ", "))
	return nil
}

func printNumbers(app *App, out io.Writer) error {
	tables := numeric.NewTables(app.Config.Memo.TableSize, pure.WithBackend(app.Config.MemoBackend()))
	defer tables.Close()

	f, err := tables.Factorial(5)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Factorial of 5: %d\n", f)

	fib, err := tables.Fibonacci(10)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Fibonacci sequence: %v\n", fib)

	if _, err := tables.Factorial(25); err != nil {
		fmt.Fprintf(out, "Factorial of 25: %v\n", err)
	}

	for _, n := range []int{-5, 0, 1, 2, 4, 15, 100} {
		fmt.Fprintf(out, "%d is %s\n", n, numeric.DescribeNumber(n))
	}
	return nil
}

func ptr(s string) *string { return &s }
