package session

// User-facing messages.
const (
	MsgCancelled           = "Inicio de sesión cancelado."
	MsgNoEmail             = "No se pudo recuperar el correo de Google."
	MsgSignInFailed        = "No se pudo iniciar sesión con Google."
	MsgAuthFailed          = "Falló la autenticación."
	MsgSaveFailed          = "No se pudo guardar la sesión en el dispositivo."
	MsgCachedAccount       = "Ingresaste con la sesión de Google guardada en el dispositivo."
	MsgNoToken             = "Ingresaste sin validación del token (token ausente)."
	MsgVerificationSkipped = "Ingresaste con Google, pero la verificación del token no está disponible."
)
