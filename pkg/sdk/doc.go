// Package sdk provides a Go client for the bnggridd conversion service.
//
//	client := sdk.New(sdk.WithBaseURL("http://localhost:8080"))
//	p, err := client.Convert(ctx, -0.32824866, 51.44533267)
//	points, err := client.ConvertBatch(ctx, lons, lats)
package sdk
