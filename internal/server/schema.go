package server

// Schema describes the HTTP endpoints for client registration.
func Schema() map[string]interface{} {
	expandProps := map[string]string{"expr": "object", "var": "string", "prec": "integer"}
	return map[string]interface{}{
		"endpoints": []map[string]interface{}{
			endpoint("POST", "/series", "Expand an expression as a truncated power series around 0",
				[]string{"expr"}, expandProps),
			endpoint("POST", "/series/batch", "Expand many expressions; each job succeeds or fails on its own",
				[]string{"jobs"}, map[string]string{"jobs": "array"}),
			endpoint("GET", "/health", "Liveness check", nil, nil),
			endpoint("GET", "/metrics", "Prometheus metrics", nil, nil),
			endpoint("GET", "/schema", "This document", nil, nil),
		},
		"expression": map[string]interface{}{
			"description": "Expression trees are objects tagged by type",
			"types": map[string]string{
				"num":  `{"type":"num","value":"-1/6"}`,
				"sym":  `{"type":"sym","name":"x"}`,
				"add":  `{"type":"add","terms":[...]}`,
				"mul":  `{"type":"mul","factors":[...]}`,
				"pow":  `{"type":"pow","base":{...},"exp":{...}}`,
				"func": `{"type":"func","name":"sin","arg":{...}}`,
			},
		},
	}
}

func endpoint(method, path, description string, required []string, props map[string]string) map[string]interface{} {
	properties := map[string]interface{}{}
	for k, typ := range props {
		properties[k] = map[string]interface{}{"type": typ}
	}
	if required == nil {
		required = []string{}
	}
	return map[string]interface{}{
		"method":      method,
		"path":        path,
		"description": description,
		"inputSchema": map[string]interface{}{
			"type":       "object",
			"properties": properties,
			"required":   required,
		},
	}
}
