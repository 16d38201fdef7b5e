package eval

import (
	"bytes"
	"testing"

	"github.com/Hejdula/clisp/internal/ast"
	"github.com/Hejdula/clisp/internal/env"
	"github.com/Hejdula/clisp/internal/lexer"
	"github.com/Hejdula/clisp/internal/lisperr"
	"github.com/Hejdula/clisp/internal/parser"
	"github.com/Hejdula/clisp/internal/preproc"
	"github.com/stretchr/testify/require"
)

// evalOne evaluates the single top-level form in source against a
// fresh environment and returns its printed result.
func evalOne(t *testing.T, source string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	ev := New(&out)
	e := env.New()

	program, err := parser.Parse(lexer.Tokenize(preproc.Process(source)))
	require.NoError(t, err)
	require.Equal(t, 1, program.Count())

	result, err := ev.Evaluate(program.ListValue[0], e)
	if err != nil {
		return "", err
	}
	printed := ast.Print(result)
	require.NoError(t, ast.ReleaseTemporary(result))
	return printed, nil
}

// evalProgram evaluates every top-level form in source against one
// shared environment and returns the printed results in order.
func evalProgram(t *testing.T, source string) ([]string, error) {
	t.Helper()
	var out bytes.Buffer
	ev := New(&out)
	e := env.New()

	program, err := parser.Parse(lexer.Tokenize(preproc.Process(source)))
	require.NoError(t, err)

	var results []string
	for _, form := range program.ListValue {
		result, err := ev.Evaluate(form, e)
		if err != nil {
			return results, err
		}
		results = append(results, ast.Print(result))
		require.NoError(t, ast.ReleaseTemporary(result))
	}
	return results, nil
}

func TestArithmetic(t *testing.T) {
	cases := map[string]string{
		"(+ 1 2 3)":  "6",
		"(- 10 2 3)": "5",
		"(* 2 3 4)":  "24",
		"(/ 20 2 2)": "5",
		"(MIN 3 1 2)": "1",
		"(MAX 3 1 2)": "3",
		"(MIN 5)":     "5",
	}
	for src, want := range cases {
		got, err := evalOne(t, src)
		require.NoError(t, err, src)
		require.Equal(t, want, got, src)
	}
}

func TestDivisionByZero(t *testing.T) {
	_, err := evalOne(t, "(/ 10 0)")
	require.Error(t, err)
	require.Equal(t, lisperr.ZeroDivision, lisperr.KindOf(err))
}

func TestRelational(t *testing.T) {
	cases := map[string]string{
		"(= 1 1)":     "T",
		"(= 1 2)":     "NIL",
		"(/= 1 2)":    "T",
		"(< 1 2 3)":   "T",
		"(< 1 3 2)":   "NIL",
		"(> 3 2 1)":   "T",
		"(<= 1 1 2)":  "T",
		"(>= 2 2 1)":  "T",
	}
	for src, want := range cases {
		got, err := evalOne(t, src)
		require.NoError(t, err, src)
		require.Equal(t, want, got, src)
	}
}

func TestNeqlRequiresAllPairsDistinct(t *testing.T) {
	got, err := evalOne(t, "(/= 1 2 1)")
	require.NoError(t, err)
	require.Equal(t, "NIL", got)

	got, err = evalOne(t, "(/= 1 2 3)")
	require.NoError(t, err)
	require.Equal(t, "T", got)
}

func TestSetAllocatesAndInc(t *testing.T) {
	results, err := evalProgram(t, "(SET 'A 5) (INC A 2) A")
	require.NoError(t, err)
	require.Equal(t, []string{"5", "7", "7"}, results)
}

func TestSetReplacesExistingVariableInPlace(t *testing.T) {
	results, err := evalProgram(t, "(SET 'A 1) (SET 'A 9) A")
	require.NoError(t, err)
	require.Equal(t, []string{"1", "9", "9"}, results)
}

func TestSetRejectsSymbolValue(t *testing.T) {
	_, err := evalOne(t, "(SET 'A 'B)")
	require.Error(t, err)
	require.Equal(t, lisperr.SyntaxError, lisperr.KindOf(err))
}

func TestListOperations(t *testing.T) {
	results, err := evalProgram(t, "(SET 'XS '(1 2 3)) (LENGTH XS) (CAR XS) (NTH 2 XS)")
	require.NoError(t, err)
	require.Equal(t, []string{"(1 2 3)", "3", "1", "3"}, results)
}

func TestCarDoesNotMutateTheSourceVariable(t *testing.T) {
	results, err := evalProgram(t, "(SET 'XS '(1 2 3)) (CAR XS) XS")
	require.NoError(t, err)
	require.Equal(t, []string{"(1 2 3)", "1", "(1 2 3)"}, results)
}

func TestNthDoesNotMutateTheSourceVariable(t *testing.T) {
	results, err := evalProgram(t, "(SET 'XS '(1 2 3)) (NTH 1 XS) XS")
	require.NoError(t, err)
	require.Equal(t, []string{"(1 2 3)", "2", "(1 2 3)"}, results)
}

func TestCdrRejectsSingleton(t *testing.T) {
	_, err := evalOne(t, "(CDR '(A))")
	require.Error(t, err)
	require.Equal(t, lisperr.SyntaxError, lisperr.KindOf(err))
}

func TestCdrOfLongerList(t *testing.T) {
	got, err := evalOne(t, "(CDR '(1 2 3))")
	require.NoError(t, err)
	require.Equal(t, "(2 3)", got)
}

func TestAtom(t *testing.T) {
	cases := map[string]string{
		"(ATOM 1)":      "T",
		"(ATOM 'X)":     "T",
		"(ATOM '())":    "T",
		"(ATOM '(1 2))": "NIL",
	}
	for src, want := range cases {
		got, err := evalOne(t, src)
		require.NoError(t, err, src)
		require.Equal(t, want, got, src)
	}
}

func TestIf(t *testing.T) {
	got, err := evalOne(t, "(IF (= 1 1) (QUOTE YES) (QUOTE NO))")
	require.NoError(t, err)
	require.Equal(t, "YES", got)

	got, err = evalOne(t, "(IF (= 1 2) (QUOTE YES) (QUOTE NO))")
	require.NoError(t, err)
	require.Equal(t, "NO", got)

	got, err = evalOne(t, "(IF (= 1 2) (QUOTE YES))")
	require.NoError(t, err)
	require.Equal(t, "NIL", got)
}

func TestWhileLoopsUntilConditionIsFalse(t *testing.T) {
	results, err := evalProgram(t, "(SET 'I 0) (WHILE (< I 3) (INC I 1)) I")
	require.NoError(t, err)
	require.Equal(t, []string{"0", "NIL", "3"}, results)
}

func TestWhileStopsOnBrk(t *testing.T) {
	results, err := evalProgram(t, "(SET 'I 0) (WHILE (< I 10) (INC I 1) (IF (= I 3) (BRK))) I")
	require.NoError(t, err)
	require.Equal(t, []string{"0", "NIL", "3"}, results)
}

func TestBrkOutsideWhilePropagates(t *testing.T) {
	_, err := evalOne(t, "(BRK)")
	require.Error(t, err)
	require.Equal(t, lisperr.ControlBreak, lisperr.KindOf(err))
}

func TestQuitPropagatesAsControlSignal(t *testing.T) {
	_, err := evalOne(t, "(QUIT)")
	require.Error(t, err)
	require.True(t, lisperr.IsControl(err))
	require.Equal(t, lisperr.ControlQuit, lisperr.KindOf(err))
}

func TestUnknownVariable(t *testing.T) {
	_, err := evalOne(t, "UNDEFINED")
	require.Error(t, err)
	require.Equal(t, lisperr.UnknownVariable, lisperr.KindOf(err))
}

func TestUnknownOperator(t *testing.T) {
	_, err := evalOne(t, "(NOPE 1 2)")
	require.Error(t, err)
	require.Equal(t, lisperr.UnknownOperator, lisperr.KindOf(err))
}

func TestTypeMismatchIsSyntaxError(t *testing.T) {
	_, err := evalOne(t, "(+ 1 'X)")
	require.Error(t, err)
	require.Equal(t, lisperr.SyntaxError, lisperr.KindOf(err))
}

func TestQuoteReturnsUnevaluated(t *testing.T) {
	got, err := evalOne(t, "'(+ 1 2)")
	require.NoError(t, err)
	require.Equal(t, "(+ 1 2)", got)
}

func TestPrintWritesToEvaluatorOutput(t *testing.T) {
	var out bytes.Buffer
	ev := New(&out)
	e := env.New()
	program, err := parser.Parse(lexer.Tokenize(preproc.Process("(PRINT (+ 1 2))")))
	require.NoError(t, err)
	result, err := ev.Evaluate(program.ListValue[0], e)
	require.NoError(t, err)
	require.Equal(t, "3", ast.Print(result))
	require.NoError(t, ast.ReleaseTemporary(result))
	require.Equal(t, "3\n", out.String())
}

func TestPrintReturnsTheEvaluatedNodeUnchanged(t *testing.T) {
	results, err := evalProgram(t, "(SET 'Y (PRINT 5)) Y")
	require.NoError(t, err)
	require.Equal(t, []string{"5", "5"}, results)
}

func TestPrintRejectsWrongArgCount(t *testing.T) {
	_, err := evalOne(t, "(PRINT 1 2)")
	require.Error(t, err)
	require.Equal(t, lisperr.SyntaxError, lisperr.KindOf(err))

	_, err = evalOne(t, "(PRINT)")
	require.Error(t, err)
	require.Equal(t, lisperr.SyntaxError, lisperr.KindOf(err))
}
