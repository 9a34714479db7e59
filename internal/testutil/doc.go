// Package testutil provides shared test helpers for vlsm-ctl.
//
// # Test Environment
//
// NewTestEnv builds an isolated environment with a temporary config and plans
// directory and installs an App whose output goes to a buffer:
//
//	env := testutil.NewTestEnv(t)
//	env.AddPlan(testutil.CampusPlan)
//	// run a command, then inspect env.Out.String()
//
// # Fixtures
//
// Plan fixtures are embedded in the test binary:
//
//	data, err := testutil.LoadFixture(testutil.CampusPlan)
//	path := testutil.WriteFixture(t, dir, testutil.BranchPlan)
package testutil
