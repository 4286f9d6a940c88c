// Command mock-weather-server serves canned OpenWeatherMap and ip-api
// responses for local development and end-to-end runs without an API key.
package main

import (
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

type condition struct {
	ID          int    `json:"id"`
	Main        string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type coord struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type city struct {
	Name      string
	Country   string
	Coord     coord
	Temp      float64
	FeelsLike float64
	Humidity  int
	Pressure  int
	Wind      float64
	Condition condition
}

var cities = map[string]city{
	"london": {
		Name: "London", Country: "GB", Coord: coord{Lat: 51.5085, Lon: -0.1257},
		Temp: 15.0, FeelsLike: 14.2, Humidity: 76, Pressure: 1012, Wind: 4.6,
		Condition: condition{ID: 802, Main: "Clouds", Description: "scattered clouds", Icon: "03d"},
	},
	"paris": {
		Name: "Paris", Country: "FR", Coord: coord{Lat: 48.8534, Lon: 2.3488},
		Temp: 18.0, FeelsLike: 17.4, Humidity: 68, Pressure: 1016, Wind: 3.1,
		Condition: condition{ID: 800, Main: "Clear", Description: "clear sky", Icon: "01d"},
	},
	"berlin": {
		Name: "Berlin", Country: "DE", Coord: coord{Lat: 52.5244, Lon: 13.4105},
		Temp: 12.0, FeelsLike: 10.9, Humidity: 82, Pressure: 1009, Wind: 5.2,
		Condition: condition{ID: 500, Main: "Rain", Description: "light rain", Icon: "10d"},
	},
}

// nearest returns the canned city closest to a position
func nearest(lat, lon float64) city {
	best := cities["london"]
	bestDist := -1.0
	for _, c := range cities {
		d := (c.Coord.Lat-lat)*(c.Coord.Lat-lat) + (c.Coord.Lon-lon)*(c.Coord.Lon-lon)
		if bestDist < 0 || d < bestDist {
			best, bestDist = c, d
		}
	}
	return best
}

func newRouter(now func() time.Time) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/weather", func(c *gin.Context) {
		found, ok := resolve(c)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"coord":   gin.H{"lat": found.Coord.Lat, "lon": found.Coord.Lon},
			"weather": []condition{found.Condition},
			"main": gin.H{
				"temp": found.Temp, "feels_like": found.FeelsLike,
				"temp_min": found.Temp - 2, "temp_max": found.Temp + 2,
				"pressure": found.Pressure, "humidity": found.Humidity,
			},
			"wind": gin.H{"speed": found.Wind},
			"dt":   now().Unix(),
			"sys":  gin.H{"country": found.Country},
			"name": found.Name,
		})
	})

	r.GET("/forecast", func(c *gin.Context) {
		found, ok := resolve(c)
		if !ok {
			return
		}
		start := now().UTC().Truncate(3 * time.Hour)
		list := make([]gin.H, 0, 40)
		for i := 0; i < 40; i++ {
			temp := found.Temp + float64(i%8) - 3
			list = append(list, gin.H{
				"dt":      start.Add(time.Duration(i) * 3 * time.Hour).Unix(),
				"main":    gin.H{"temp": temp, "temp_min": temp - 1, "temp_max": temp + 1},
				"weather": []condition{found.Condition},
			})
		}
		c.JSON(http.StatusOK, gin.H{
			"list": list,
			"city": gin.H{"name": found.Name, "country": found.Country, "coord": found.Coord},
		})
	})

	r.GET("/json/", func(c *gin.Context) {
		paris := cities["paris"]
		c.JSON(http.StatusOK, gin.H{"status": "success", "lat": paris.Coord.Lat, "lon": paris.Coord.Lon})
	})

	return r
}

// resolve applies the provider's error behaviour and finds the requested city.
// It writes the error response itself and reports false in that case.
func resolve(c *gin.Context) (city, bool) {
	switch c.Query("appid") {
	case "":
		c.JSON(http.StatusUnauthorized, gin.H{"cod": 401, "message": "Invalid API key."})
		return city{}, false
	case "ratelimited":
		c.JSON(http.StatusTooManyRequests, gin.H{"cod": 429, "message": "rate limit exceeded"})
		return city{}, false
	}

	if lat, lon := c.Query("lat"), c.Query("lon"); lat != "" && lon != "" {
		latV, errLat := strconv.ParseFloat(lat, 64)
		lonV, errLon := strconv.ParseFloat(lon, 64)
		if errLat != nil || errLon != nil {
			c.JSON(http.StatusBadRequest, gin.H{"cod": "400", "message": "wrong latitude or longitude"})
			return city{}, false
		}
		return nearest(latV, lonV), true
	}

	name := strings.ToLower(strings.TrimSpace(c.Query("q")))
	switch name {
	case "":
		c.JSON(http.StatusBadRequest, gin.H{"cod": "400", "message": "Nothing to geocode"})
		return city{}, false
	case "servererror":
		c.JSON(http.StatusInternalServerError, gin.H{"cod": "500", "message": "Internal error"})
		return city{}, false
	}

	found, ok := cities[name]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"cod": "404", "message": "city not found"})
		return city{}, false
	}
	return found, true
}

func main() {
	gin.SetMode(gin.ReleaseMode)

	addr := ":8081"
	if port := os.Getenv("MOCK_WEATHER_PORT"); port != "" {
		addr = ":" + port
	}

	slog.Info("Mock weather server starting", "addr", addr)
	if err := newRouter(time.Now).Run(addr); err != nil {
		slog.Error("Failed to start server", "error", err)
		os.Exit(1)
	}
}
