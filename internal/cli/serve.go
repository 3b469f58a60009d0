package cli

import (
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"subconv/internal/config"
	"subconv/internal/subtitle"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run an HTTP service that converts uploaded subtitle files",
	Long: `Run an HTTP service around the converter.

POST a subtitle file as multipart form data (field "file") to
/api/convert and the converted document comes back as an attachment
named after the upload with a .ass extension.

Examples:
  subconv serve
  subconv serve --port 9000 --styles my_styles.toml`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().IntP("port", "p", 8080, "Port to listen on")
}

func runServe(cmd *cobra.Command, args []string) error {
	port, _ := cmd.Flags().GetInt("port")
	stylesPath, _ := cmd.Flags().GetString("styles")

	set, err := config.Load(stylesPath)
	if err != nil {
		return err
	}

	if !verbose {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())

	api := router.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})
		api.POST("/convert", func(c *gin.Context) {
			handleConvert(c, set)
		})
	}

	addr := fmt.Sprintf(":%d", port)
	logger.Infow("Starting subtitle conversion service", "addr", addr)
	return router.Run(addr)
}

// handleConvert accepts one uploaded subtitle file and replies with the
// converted document. Internal failures are logged for operators and
// reported to the client as a generic processing failure.
func handleConvert(c *gin.Context, set *subtitle.StyleSet) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing file upload"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.Errorw("Failed to open upload", "filename", fileHeader.Filename, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to process file"})
		return
	}
	defer func() {
		_ = file.Close()
	}()

	raw, err := io.ReadAll(file)
	if err != nil {
		logger.Errorw("Failed to read upload", "filename", fileHeader.Filename, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to process file"})
		return
	}

	result, err := subtitle.Convert(fileHeader.Filename, raw, set)
	if err != nil {
		logger.Errorw("Failed to convert upload", "filename", fileHeader.Filename, "error", err)
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "failed to process file"})
		return
	}

	if result.Dropped > 0 {
		logger.Debugw("Dropped malformed subtitle blocks",
			"filename", fileHeader.Filename,
			"count", result.Dropped,
		)
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
	c.Data(http.StatusOK, "text/plain; charset=utf-8", result.Data)
}
