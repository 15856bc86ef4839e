package cli

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/spf13/cobra"

	"github.com/stubwire/stubwire/pkg/capability"
)

var (
	routeMethod  string
	routePath    string
	routeHeaders []string
	routeBody    string
	routeJSON    bool
)

var routeCmd = &cobra.Command{
	Use:   "route",
	Short: "Route one request through the resolved fixture router",
	Example: `  stubwire route -f fixture.yaml --path /api/users
  stubwire route -f fixture.yaml -X POST --path /api/users -d '{"name":"jo"}'`,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := resolveFixture()
		if err != nil {
			return err
		}

		req := &capability.Request{
			Path:    routePath,
			Method:  routeMethod,
			Headers: make(http.Header),
		}
		for _, h := range routeHeaders {
			name, value, found := strings.Cut(h, ":")
			if !found {
				return fmt.Errorf("invalid header %q: want name:value", h)
			}
			req.Headers.Add(strings.TrimSpace(name), strings.TrimSpace(value))
		}
		if routeBody != "" {
			req.Body = []byte(routeBody)
		}

		resp, err := rt.Route(req)
		if err != nil {
			return err
		}

		if routeJSON {
			return printResponseJSON(cmd, resp)
		}
		printResponseText(cmd, resp)
		return nil
	},
}

func printResponseText(cmd *cobra.Command, resp *capability.Response) {
	cmd.Printf("%d %s\n", resp.StatusCode, http.StatusText(resp.StatusCode))
	for _, h := range resp.Headers {
		cmd.Printf("%s: %s\n", h.Name, h.Value)
	}
	if len(resp.Body) > 0 {
		cmd.Printf("\n%s\n", resp.Body)
	}
}

func printResponseJSON(cmd *cobra.Command, resp *capability.Response) error {
	headers := make([][2]string, 0, len(resp.Headers))
	for _, h := range resp.Headers {
		headers = append(headers, [2]string{h.Name, h.Value})
	}
	out, err := json.MarshalIndent(map[string]any{
		"status":  resp.StatusCode,
		"headers": headers,
		"body":    string(resp.Body),
	}, "", "  ")
	if err != nil {
		return err
	}
	cmd.Println(string(out))
	return nil
}

func init() {
	routeCmd.Flags().StringVarP(&routeMethod, "method", "X", "GET", "Request method")
	routeCmd.Flags().StringVar(&routePath, "path", "/", "Request path")
	routeCmd.Flags().StringArrayVarP(&routeHeaders, "header", "H", nil, "Request header (name:value, repeatable)")
	routeCmd.Flags().StringVarP(&routeBody, "body", "d", "", "Request body")
	routeCmd.Flags().BoolVar(&routeJSON, "json", false, "Print the response descriptor as JSON")
	rootCmd.AddCommand(routeCmd)
}
