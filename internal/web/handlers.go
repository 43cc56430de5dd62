package web

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"magicvilla/internal/apiclient"
	"magicvilla/internal/envelope"
	"magicvilla/internal/model"
)

// villaForm is the HTML form for creating and editing a villa.
type villaForm struct {
	Name      string  `form:"name"`
	Details   string  `form:"details"`
	Rate      float64 `form:"rate"`
	Sqft      int     `form:"sqft"`
	Occupancy int     `form:"occupancy"`
	ImageURL  string  `form:"imageUrl"`
	Amenity   string  `form:"amenity"`
}

func (f villaForm) createDTO() model.VillaCreateDTO {
	return model.VillaCreateDTO{
		Name: f.Name, Details: f.Details, Rate: f.Rate, Sqft: f.Sqft,
		Occupancy: f.Occupancy, ImageURL: f.ImageURL, Amenity: f.Amenity,
	}
}

func (f villaForm) updateDTO(id int) model.VillaUpdateDTO {
	return model.VillaUpdateDTO{
		ID: id, Name: f.Name, Details: f.Details, Rate: f.Rate, Sqft: f.Sqft,
		Occupancy: f.Occupancy, ImageURL: f.ImageURL, Amenity: f.Amenity,
	}
}

type villaNumberForm struct {
	VillaNo        int    `form:"villaNo"`
	VillaID        int    `form:"villaID"`
	SpecialDetails string `form:"specialDetails"`
}

// RegisterRoutes attaches the HTML pages and form posts.
func RegisterRoutes(app *fiber.App, villas *VillaService, numbers *VillaNumberService, log *zap.Logger) {
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })

	app.Get("/", Index(villas, log))
	app.Post("/villas", CreateVilla(villas, log))
	app.Get("/villas/:id", VillaDetail(villas, log))
	app.Post("/villas/:id", UpdateVilla(villas, log))
	app.Post("/villas/:id/delete", DeleteVilla(villas, log))

	app.Get("/villa-numbers", VillaNumbers(numbers, villas, log))
	app.Post("/villa-numbers", CreateVillaNumber(numbers, log))
	app.Post("/villa-numbers/:id", UpdateVillaNumber(numbers, log))
	app.Post("/villa-numbers/:id/delete", DeleteVillaNumber(numbers, log))
}

func render(c *fiber.Ctx, status int, name string, data page) error {
	c.Status(status).Type("html")
	return pages.ExecuteTemplate(c, name, data)
}

// upstream renders a 502 when the API tier could not be reached or answered
// with something that is not an envelope.
func upstream(c *fiber.Ctx, log *zap.Logger, err error) error {
	var te *apiclient.TransportError
	kind := "decode"
	if errors.As(err, &te) {
		kind = "transport"
	}
	log.Warn("api_call_failed", zap.String("kind", kind), zap.String("path", c.Path()), zap.Error(err))
	return render(c, fiber.StatusBadGateway, "error", page{
		Title:  "Villa API unavailable",
		Errors: []string{err.Error()},
	})
}

// unsuccessful renders the messages of an envelope with isSuccess=false.
func unsuccessful(c *fiber.Ctx, env envelope.Response) error {
	status := env.StatusCode
	if status < 400 {
		status = fiber.StatusBadGateway
	}
	return render(c, status, "error", page{Title: "Request failed", Errors: env.ErrorMessages})
}

func badForm(c *fiber.Ctx) error {
	return render(c, fiber.StatusBadRequest, "error", page{Title: "Request failed", Errors: []string{"invalid form"}})
}

// outcome redirects to target when env succeeded.
func outcome(c *fiber.Ctx, log *zap.Logger, env envelope.Response, err error, target string) error {
	if err != nil {
		return upstream(c, log, err)
	}
	if !env.IsSuccess {
		return unsuccessful(c, env)
	}
	return c.Redirect(target, fiber.StatusSeeOther)
}

func Index(villas *VillaService, log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		env, err := villas.GetAll(c.UserContext())
		if err != nil {
			return upstream(c, log, err)
		}
		if !env.IsSuccess {
			return unsuccessful(c, env)
		}
		vs, err := envelope.Decode[[]model.VillaDTO](env.Result)
		if err != nil {
			return upstream(c, log, err)
		}
		return render(c, fiber.StatusOK, "index", page{Title: "Villas", Villas: vs})
	}
}

func VillaDetail(villas *VillaService, log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return badForm(c)
		}
		env, err := villas.Get(c.UserContext(), id)
		if err != nil {
			return upstream(c, log, err)
		}
		if !env.IsSuccess {
			return unsuccessful(c, env)
		}
		v, err := envelope.Decode[model.VillaDTO](env.Result)
		if err != nil {
			return upstream(c, log, err)
		}
		return render(c, fiber.StatusOK, "villa", page{Title: v.Name, Villa: &v})
	}
}

func CreateVilla(villas *VillaService, log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var f villaForm
		if err := c.BodyParser(&f); err != nil {
			return badForm(c)
		}
		env, err := villas.Create(c.UserContext(), f.createDTO())
		return outcome(c, log, env, err, "/")
	}
}

func UpdateVilla(villas *VillaService, log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return badForm(c)
		}
		var f villaForm
		if err := c.BodyParser(&f); err != nil {
			return badForm(c)
		}
		env, err := villas.Update(c.UserContext(), f.updateDTO(id))
		return outcome(c, log, env, err, c.Path())
	}
}

func DeleteVilla(villas *VillaService, log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return badForm(c)
		}
		env, err := villas.Delete(c.UserContext(), id)
		return outcome(c, log, env, err, "/")
	}
}

// VillaNumbers lists villa numbers; the villas feed the create form's select.
func VillaNumbers(numbers *VillaNumberService, villas *VillaService, log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		env, err := numbers.GetAll(c.UserContext())
		if err != nil {
			return upstream(c, log, err)
		}
		if !env.IsSuccess {
			return unsuccessful(c, env)
		}
		ns, err := envelope.Decode[[]model.VillaNumberDTO](env.Result)
		if err != nil {
			return upstream(c, log, err)
		}

		data := page{Title: "Villa Numbers", Numbers: ns}
		venv, err := villas.GetAll(c.UserContext())
		if err != nil {
			return upstream(c, log, err)
		}
		if venv.IsSuccess {
			if data.Villas, err = envelope.Decode[[]model.VillaDTO](venv.Result); err != nil {
				return upstream(c, log, err)
			}
		} else {
			data.Errors = venv.ErrorMessages
		}
		return render(c, fiber.StatusOK, "villaNumbers", data)
	}
}

func CreateVillaNumber(numbers *VillaNumberService, log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var f villaNumberForm
		if err := c.BodyParser(&f); err != nil {
			return badForm(c)
		}
		env, err := numbers.Create(c.UserContext(), model.VillaNumberCreateDTO{
			VillaNo: f.VillaNo, VillaID: f.VillaID, SpecialDetails: f.SpecialDetails,
		})
		return outcome(c, log, env, err, "/villa-numbers")
	}
}

func UpdateVillaNumber(numbers *VillaNumberService, log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		no, err := c.ParamsInt("id")
		if err != nil {
			return badForm(c)
		}
		var f villaNumberForm
		if err := c.BodyParser(&f); err != nil {
			return badForm(c)
		}
		env, err := numbers.Update(c.UserContext(), model.VillaNumberUpdateDTO{
			VillaNo: no, VillaID: f.VillaID, SpecialDetails: f.SpecialDetails,
		})
		return outcome(c, log, env, err, "/villa-numbers")
	}
}

func DeleteVillaNumber(numbers *VillaNumberService, log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		no, err := c.ParamsInt("id")
		if err != nil {
			return badForm(c)
		}
		env, err := numbers.Delete(c.UserContext(), no)
		return outcome(c, log, env, err, "/villa-numbers")
	}
}
