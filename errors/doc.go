/*
Package errors implements the error taxonomy shared by every treasury
extension.

Root errors are registered once with a unique code. Extensions that need a
domain specific failure (for example x/schedule and its stage gate) declare
their own root error with Register(code, description). Use ErrXyz.New and
ErrXyz.Newf, or Wrap(err, "..."), at the point of failure so that a stack
trace is attached.

Once you have an error, use fmt.Printf/Sprintf to get more context
	%s is just the error message
	%+v is the full stack trace of the innermost wrap

Test for an error kind with ErrXyz.Is(err). This unwraps the whole chain,
so it does not matter how many times an error was wrapped on its way up.
*/
package errors
