// Package modrinth provides a client for the Modrinth v2 API.
//
// Modrinth hosts Minecraft mods, modpacks, resource packs and shaders. This
// package covers notifications, users, projects and versions on top of the
// generic openapi request core.
//
// # Usage
//
// Create a client with a personal access token:
//
//	cfg := openapi.NewConfiguration(
//		openapi.WithAPIKey(modrinth.AuthHeader, "mrp_..."),
//		openapi.WithUserAgent("you/your-app/1.0.0 (you@example.com)"),
//	)
//	client, err := modrinth.NewClient(cfg, modrinth.WithLogger(logger))
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer client.Close()
//
//	notifications, err := client.Notifications.GetUserNotifications(ctx, "jai")
//	if err != nil {
//		log.Fatal(err)
//	}
//
// Every operation comes in three forms: a plain call returning the decoded
// value, a WithHTTPInfo call that also returns the status code and headers,
// and an Async call returning an openapi.Future.
//
// # Error Handling
//
// Errors are classified by openapi.KindOf:
//
//   - KindInvalidArgument: a required argument was missing, nothing was sent
//   - KindTransport: no response was received
//   - KindHTTPStatus: the server answered outside 2xx
//   - KindDecode: a 2xx body did not match the expected type
//
// A 401 carries the decoded AuthError:
//
//	if authErr, ok := modrinth.AuthErrorFrom(err); ok {
//		fmt.Println(authErr.Description)
//	}
//
// A 410 means the API version has been retired; see IsRetired.
package modrinth
