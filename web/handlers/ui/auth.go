package ui

import (
	"github.com/gofiber/fiber/v2"
	"github.com/ottermq/mbconsole/internal/console"
	"github.com/ottermq/mbconsole/web/handlers"
	"github.com/ottermq/mbconsole/web/middleware"
)

func loginPage(c *fiber.Ctx, env *handlers.Env, form console.LoginForm) fiber.Map {
	data := page(c, env, "Login", "")
	data["Form"] = form
	data["RequireEndpoint"] = env.Config.RequireEndpoint
	data["DefaultHost"] = env.Config.BrokerHost
	data["DefaultPort"] = env.Config.BrokerPort
	data["MissingHost"] = false
	data["MissingPort"] = false
	return data
}

// LoginPage shows the login form, or the exchanges when the session is still live.
func LoginPage(c *fiber.Ctx, env *handlers.Env) error {
	if _, ok := middleware.SessionFromCookie(c, env.Tokens, env.Sessions); ok {
		return c.Redirect("/exchange", fiber.StatusSeeOther)
	}
	return render(c, fiber.StatusOK, "login", loginPage(c, env, console.LoginForm{}))
}

func Login(c *fiber.Ctx, env *handlers.Env) error {
	form := console.LoginForm{
		Username: c.FormValue("username"),
		Password: c.FormValue("password"),
		Host:     c.FormValue("host"),
		Port:     c.FormValue("port"),
	}

	gate, token, sess, err := env.Login(c.UserContext(), form)
	if err != nil {
		form.Password = ""
		data := loginPage(c, env, form)
		data["Error"] = handlers.Describe(err)
		data["MissingHost"] = gate.MissingHost
		data["MissingPort"] = gate.MissingPort
		return render(c, handlers.Status(err), "login", data)
	}

	middleware.SetSessionCookie(c, token, sess.ExpiresAt)
	return c.Redirect("/exchange", fiber.StatusSeeOther)
}

// Logout works with or without a live session so a stale cookie can always be cleared.
func Logout(c *fiber.Ctx, env *handlers.Env) error {
	if sess, ok := middleware.SessionFromCookie(c, env.Tokens, env.Sessions); ok {
		env.Logout(c.UserContext(), sess)
	}
	middleware.ClearSessionCookie(c)
	return c.Redirect("/", fiber.StatusSeeOther)
}
