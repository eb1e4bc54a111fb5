// Package httpapi exposes the record service over HTTP.
//
// Routes:
//
//	GET  /api/animals        list, filtered by name, species, diet and personalityTraits
//	GET  /api/animals/{id}   single animal, 404 with an empty body when absent
//	POST /api/animals        create from a JSON or form body
//	GET  /api/zookeepers     list, filtered by name, age and favoriteAnimal
//	GET  /api/zookeepers/{id}
//	POST /api/zookeepers
//	GET  /healthz
//	GET  /metrics            when a metrics recorder is configured
//
// Invalid create bodies get a 400 with a fixed plain-text message. When a
// public directory is configured, every other path is served from it.
package httpapi
