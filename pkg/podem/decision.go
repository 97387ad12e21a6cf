package podem

import "github.com/circuitkit/atpg/pkg/circuit"

// run is the recursive decision routine: check for success or failure,
// compute an objective, backtrace it to a primary input, and try both
// polarities there before giving up and releasing the input to X.
func (e *Engine) run() (bool, error) {
	if e.anyOutputComposite() {
		return true, nil
	}
	if e.faultActivationFailed() {
		return false, nil
	}

	objNode, objVal, ok := e.objective()
	if !ok {
		return false, nil
	}

	piNode, piVal := backtrace(e.c, objNode, objVal)

	if success, err := e.tryAssignment(piNode, piVal); err != nil {
		return false, err
	} else if success {
		return true, nil
	}
	if success, err := e.tryAssignment(piNode, piVal.Not()); err != nil {
		return false, err
	} else if success {
		return true, nil
	}

	e.log.Backtrack("releasing primary input %d to X", piNode)
	e.c.Node(piNode).Five = circuit.X
	return false, nil
}

// tryAssignment implies (n, v), recurses into run() on success, and
// reverts every change this branch made if either the implication or
// the recursive search fails.
func (e *Engine) tryAssignment(n int, v circuit.FiveValue) (bool, error) {
	e.log.Decision("trying %d = %s", n, v)
	e.log.Indent()
	defer e.log.Outdent()

	var log []change
	if err := e.imply(n, v, &log); err != nil {
		revert(e.c, log)
		return false, nil
	}

	success, err := e.run()
	if err != nil {
		revert(e.c, log)
		return false, err
	}
	if success {
		return true, nil
	}

	revert(e.c, log)
	return false, nil
}
