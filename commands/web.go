package commands

import (
	"github.com/EtherSphere01/Hotel-Amin-International-sub001/config"
	"github.com/EtherSphere01/Hotel-Amin-International-sub001/web"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

func WebCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "web",
		Short: "Run the guest website",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := loadConfig(config.ServiceWeb)
			if err != nil {
				return err
			}
			defer log.Sync()
			gin.SetMode(cfg.GinMode)

			if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
				cfg.Web.Addr = addr
			}
			if api, _ := cmd.Flags().GetString("api"); api != "" {
				cfg.Web.APIBaseURL = api
			}
			secure, _ := cmd.Flags().GetBool("secure-cookies")

			site, err := web.NewServer(web.NewAPIClient(cfg.Web.APIBaseURL, log), log, web.Options{
				HotelName:     cfg.HotelName,
				SecureCookies: secure,
			})
			if err != nil {
				return err
			}
			return newServer(cfg.Web.Addr, site.Router(), log).run(cmd.Context())
		},
	}
	cmd.Flags().String("addr", "", "listen address (overrides WEB_ADDR)")
	cmd.Flags().String("api", "", "REST API base URL (overrides API_BASE_URL)")
	cmd.Flags().Bool("secure-cookies", false, "mark session cookies Secure")
	return cmd
}
