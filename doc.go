// Package busfleet serves the fleet lookup page and JSON API.
//
// Routes:
//
//	GET /                 lookup page with the agency list and API token
//	GET /static/...       embedded assets
//	GET /api/agencies     [{key, display_name}] in registry order
//	GET /api/fleet        ?agency=&busId=, guarded and rate limited
//	GET /api/health       status and registry size
//
// /api/fleet requires an Origin or Referer whose hostname matches the
// serving host and the shared token in X-CSRF-Token, X-API-Token or an
// Authorization bearer header.
package busfleet
