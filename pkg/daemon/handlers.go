package daemon

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/tab/holy-grind/pkg/catalog"
	"github.com/tab/holy-grind/pkg/converter"
	"github.com/tab/holy-grind/pkg/grind"
	"github.com/tab/holy-grind/pkg/version"
)

// abortWithError writes err as the response body and records it on the
// context for the logger.
func abortWithError(c *gin.Context, status int, err error) {
	c.IndentedJSON(status, err.Error())
	_ = c.AbortWithError(status, err)
}

// service returns the current converter, or responds 503 when no catalog
// has been loaded yet.
func service(c *gin.Context) (*converter.Service, bool) {
	svc := store.Service()
	if svc == nil {
		abortWithError(c, http.StatusServiceUnavailable, errors.New("no catalog loaded"))
		return nil, false
	}
	return svc, true
}

func getVersion(c *gin.Context) {
	c.IndentedJSON(http.StatusOK, version.Version)
}

func getCatalog(c *gin.Context) {
	svc, ok := service(c)
	if !ok {
		return
	}
	c.IndentedJSON(http.StatusOK, svc.Info())
}

func reloadCatalog(c *gin.Context) {
	path := conf.CatalogPath()
	cat, err := store.Load(path)
	if err != nil {
		logrus.Errorf("reloadCatalog failed: %v", err)
		abortWithError(c, http.StatusInternalServerError, err)
		return
	}

	logrus.WithFields(cat.LogrusFields()).Info("catalog reloaded")

	c.IndentedJSON(http.StatusCreated, fmt.Sprintf("loaded catalog %s (version %s) with %d grinders", path, cat.Version, len(cat.Grinders)))
}

func listGrinders(c *gin.Context) {
	svc, ok := service(c)
	if !ok {
		return
	}
	c.IndentedJSON(http.StatusOK, svc.Search(c.Query("q")))
}

func findGrinder(c *gin.Context) (*grind.Grinder, bool) {
	svc, ok := service(c)
	if !ok {
		return nil, false
	}
	g, err := svc.Catalog().Find(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusNotFound, err)
		return nil, false
	}
	return g, true
}

func getGrinder(c *gin.Context) {
	g, ok := findGrinder(c)
	if !ok {
		return
	}
	c.IndentedJSON(http.StatusOK, g)
}

func getRange(c *gin.Context) {
	g, ok := findGrinder(c)
	if !ok {
		return
	}

	r, ok := grind.GetRange(g)
	if !ok {
		abortWithError(c, http.StatusUnprocessableEntity, fmt.Errorf("grinder %s has no calibration data", g.ID))
		return
	}

	c.IndentedJSON(http.StatusOK, r)
}

func convert(c *gin.Context) {
	svc, ok := service(c)
	if !ok {
		return
	}

	swap, err := strconv.ParseBool(c.DefaultQuery("swap", "false"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Errorf("invalid swap: %w", err))
		return
	}

	lang := requestLanguage(c)

	resp, err := svc.Convert(c.Query("from"), c.Query("to"), c.Query("value"), lang, swap)
	if err != nil {
		if errors.Is(err, catalog.ErrGrinderNotFound) {
			abortWithError(c, http.StatusNotFound, err)
			return
		}
		abortWithError(c, http.StatusInternalServerError, err)
		return
	}

	c.Header("Content-Language", lang)
	c.Header("Vary", "Accept-Language")
	c.IndentedJSON(http.StatusOK, resp)
}

// requestLanguage picks the message language: the lang query parameter, the
// path prefix (/ru/convert), Accept-Language, then the configured default.
func requestLanguage(c *gin.Context) string {
	if q := c.Query("lang"); q != "" {
		return messages.Match(q)
	}
	if l, ok := messages.FromPath(c.Request.URL.Path); ok {
		return l
	}
	if h := c.GetHeader("Accept-Language"); h != "" {
		return messages.Resolve(h)
	}
	if conf != nil {
		return messages.Match(conf.Language())
	}
	return messages.Fallback()
}

func streamEvents(c *gin.Context) {
	ch := sseHub.Subscribe()
	defer sseHub.Unsubscribe(ch)

	logrus.Debug("events subscriber connected")

	// send headers now so clients see the stream open before the first event
	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Status(http.StatusOK)
	c.Writer.Flush()

	c.Stream(func(_ io.Writer) bool {
		select {
		case ev, ok := <-ch:
			if !ok {
				return false
			}
			c.SSEvent(ev.Name, string(ev.Data))
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})

	logrus.Debug("events subscriber disconnected")
}
