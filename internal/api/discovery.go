package api

// Discovery document constants. These describe a sample client setup and do
// not follow the running server's port or key.
const (
	discoveryServerName = "word-counter"
	discoveryVersion    = "1.0.0"
	discoveryBaseURL    = "http://localhost:55000"
	discoverySampleKey  = "test-key-123"
)

// DiscoveryDocument returns the client configuration served at "/". A fresh
// value is built on each call so handlers never share mutable maps.
func DiscoveryDocument() map[string]interface{} {
	return map[string]interface{}{
		"mcpServers": map[string]interface{}{
			discoveryServerName: map[string]interface{}{
				"name":        discoveryServerName,
				"version":     discoveryVersion,
				"description": "Cursor MCP client configuration for word counter service",
				"url":         discoveryBaseURL,
				"transport": map[string]interface{}{
					"type":     "http",
					"base_url": discoveryBaseURL,
					"headers": map[string]interface{}{
						"Content-Type": "application/json",
						"X-API-Key":    discoverySampleKey,
					},
				},
				"commands": map[string]interface{}{
					"count": countCommand(),
				},
			},
		},
	}
}

func countCommand() map[string]interface{} {
	return map[string]interface{}{
		"endpoint":    "/count",
		"method":      "POST",
		"description": "Count lines, words, and characters in a text file",
		"request_schema": map[string]interface{}{
			"type":     "object",
			"required": []string{"file_path"},
			"properties": map[string]interface{}{
				"file_path": schemaField("string", "Path to the text file to analyze"),
			},
		},
		"response_schema": map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"result": map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"lines":      schemaField("integer", "Number of lines in the file"),
						"words":      schemaField("integer", "Number of words in the file"),
						"characters": schemaField("integer", "Number of characters in the file"),
					},
				},
				"error": schemaField("string", "Error message if the request failed"),
			},
		},
	}
}

func schemaField(typ, description string) map[string]interface{} {
	return map[string]interface{}{
		"type":        typ,
		"description": description,
	}
}
