/*
Package assessment implements the grading side channel of the simulator.

A Catalog names the modules and steps a trainee must complete. A Verifier holds
a declarative table of Rules, each mapping an action kind and a predicate over
the action payload (and, for updates, the record it replaced) to one grid Cell.
The transition engine runs the verifier after every applied transition and
folds the resulting cells into the same state it returns, so the primary
effect and its grading are never observed apart.

Verification never rejects or alters an action. It is purely additive: a rule
that never fires simply leaves its cell false.
*/
package assessment
