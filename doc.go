/*
Package dentsim is a training simulator for dental front-office software.

It models a clinic (patients, appointments, ledgers, charts, insurance,
tasks and portal messages) as a single immutable session state. Every user
gesture becomes a typed action; a pure transition function produces the next
state and, as a side product, marks the training steps the gesture
completed. Sessions can be undone, restarted and graded.

# Concept

The engine never performs I/O. Hosts (the CLI, the HTTP server, tests) own a
session controller, feed it actions and render the resulting state. The same
transition function backs in-process sessions and sessions persisted to
memory or Redis.

# Usage

	sim := dentsim.New()
	ctrl := sim.NewSession()

	pid := 1
	_, out, err := ctrl.Dispatch(ctx, domain.SelectPatient{PatientID: &pid})
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(out.Verified) // [{0 0}]

	report := ctrl.Report()
	fmt.Printf("%d/%d\n", report.Completed, report.Total)

Scripts replay recorded YAML action lists through a Runner:

	script, _ := dentsim.LoadScript("visit.yaml")
	report, err := (&dentsim.Runner{}).Run(ctx, ctrl, script)
*/
package dentsim
