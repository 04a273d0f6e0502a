// Package testutils provides helpers for end-to-end API tests: starting a
// test server, minting bearer tokens and issuing JSON requests against it.
//
//	server := testutils.CreateTestServer(t, router)
//	header := testutils.GenerateAuthHeader(t, jwtService, "alice")
//	resp, body := testutils.ExecuteJSONRequest(t, server, header, http.MethodGet, "/tasks", "")
//	testutils.AssertErrorResponse(t, resp, body, http.StatusNotFound, "Task not found.")
package testutils
