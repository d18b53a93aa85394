package cli

import (
	"fmt"
	"io"

	"github.com/healthguidelab/keto365/internal/client/recipes"
	"github.com/healthguidelab/keto365/internal/client/session"
)

func renderLoading(w io.Writer) {
	fmt.Fprintln(w, "Cargando...")
}

func renderSigningIn(w io.Writer) {
	fmt.Fprintln(w, "Validando acceso con Google...")
}

func renderLogin(w io.Writer, lastError string) {
	fmt.Fprintln(w, "HealthGuideApp")
	fmt.Fprintln(w, "Inicia una vez con Google para guardar tu correo.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  login  Entrar con Google")
	fmt.Fprintln(w, "  retry  Reintentar inicio con Google")
	if lastError != "" {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "! %s\n", lastError)
	}
}

func renderWelcome(w io.Writer, email, advisory string) {
	fmt.Fprintln(w, "Bienvenido a Keto365")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Sesión iniciada correctamente con:")
	fmt.Fprintln(w, email)
	if advisory != "" {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "(i) %s\n", advisory)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  continue  Continuar")
}

func renderRecipe(w io.Writer, r recipes.Daily) {
	fmt.Fprintf(w, "Receta keto del día %d\n", r.DayOfYear)
	fmt.Fprintln(w, r.Title)
}

func renderHome(w io.Writer, email string, r recipes.Daily) {
	fmt.Fprintln(w, "¡Hola!")
	fmt.Fprintln(w, email)
	fmt.Fprintln(w)
	renderRecipe(w, r)
}

// renderState writes the screen for st. A logged-in session shows the
// welcome screen until the user continues.
func renderState(w io.Writer, st session.State, showWelcome bool, r recipes.Daily) {
	switch st.Kind {
	case session.KindLoading:
		renderLoading(w)
	case session.KindSigningIn:
		renderSigningIn(w)
	case session.KindLoggedOut:
		renderLogin(w, st.LastError)
	case session.KindLoggedIn:
		if showWelcome {
			renderWelcome(w, st.Email, st.Advisory)
		} else {
			renderHome(w, st.Email, r)
		}
	}
}
