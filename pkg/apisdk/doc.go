/*
Package apisdk is a Go client for the creatorhub HTTP API.

Public operations live on Client; everything that needs a bearer token
lives on Session, which Client.Login returns:

	client := apisdk.NewClient("http://localhost:8080")

	if _, err := client.Register(ctx, apisdk.RegisterRequest{
		Email: "boss@example.com", Password: "secret1", FullName: "Boss",
	}); err != nil {
		return err
	}

	session, err := client.Login(ctx, "boss@example.com", "secret1")
	if err != nil {
		return err
	}

	entry, err := session.CreateRosterEntry(ctx, apisdk.RosterRequest{
		Platform: "youtube", Handle: "alice", URL: "https://youtube.com/@alice",
	})

	invite, err := session.CreateInvite(ctx, apisdk.CreateInviteRequest{
		InfluencerID: entry.ID, Email: "alice@example.com",
	})

Every non-2xx response is returned as an *APIError carrying the HTTP status,
the error code and, for validation failures, per-field details.

Sessions do not refresh: when the access token expires, log in again.
*/
package apisdk
