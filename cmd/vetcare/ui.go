package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"vetcare-pro/internal/app"
	"vetcare-pro/internal/domain/assistant"
	"vetcare-pro/internal/domain/orders"
	"vetcare-pro/internal/domain/pets"
	"vetcare-pro/internal/domain/products"
	"vetcare-pro/internal/session"
)

// ui es el front de terminal: el análogo del switcher de vistas del
// original. Todo el estado vive en los controladores; acá solo se lee
// input, se delega y se renderiza.
type ui struct {
	shell *app.App
	in    *bufio.Scanner
	out   io.Writer
}

func newUI(shell *app.App, in io.Reader, out io.Writer) *ui {
	return &ui{
		shell: shell,
		in:    bufio.NewScanner(in),
		out:   out,
	}
}

func (u *ui) Run() error {
	ctx := context.Background()

	fmt.Fprintln(u.out, "VetCare Pro — consultório MVP")

	for {
		if !u.shell.Authenticated() {
			if done := u.loginScreen(ctx); done {
				return nil
			}
			continue
		}

		view := u.shell.CurrentView()
		fmt.Fprintf(u.out, "\n[%s] > ", view)
		line, ok := u.readLine()
		if !ok {
			return nil
		}

		cmd, rest := splitCmd(line)
		switch cmd {
		case "":
			continue
		case "exit", "quit":
			return nil
		case "help":
			u.help()
		case "logout":
			u.shell.Session().Logout()
			fmt.Fprintln(u.out, "sesión cerrada")
		case "view":
			v, ok := app.ParseView(strings.TrimSpace(rest))
			if !ok {
				fmt.Fprintln(u.out, "vistas: dashboard patients schedule marketplace ai-assistant")
				continue
			}
			if err := u.shell.SetView(ctx, v); err != nil {
				u.printErr(err)
				continue
			}
			u.render(ctx, v)
		case "refresh":
			if err := u.shell.SetView(ctx, view); err != nil {
				u.printErr(err)
				continue
			}
			u.render(ctx, view)
		default:
			u.dispatch(ctx, view, cmd, rest)
		}
	}
}

// loginScreen corre hasta autenticar o hasta EOF. Devuelve true si hay
// que salir del programa.
func (u *ui) loginScreen(ctx context.Context) bool {
	fmt.Fprint(u.out, "\nemail (o 'register' / 'exit'): ")
	email, ok := u.readLine()
	if !ok || email == "exit" {
		return true
	}
	if email == "register" {
		u.registerScreen(ctx)
		return false
	}
	fmt.Fprint(u.out, "password: ")
	pass, ok := u.readLine()
	if !ok {
		return true
	}

	p, err := u.shell.Session().Login(ctx, email, pass)
	if err != nil {
		u.printErr(err)
		return false
	}
	fmt.Fprintf(u.out, "bienvenido, %s (%s)\n", p.Name, p.Role.Label())

	if err := u.shell.SetView(ctx, app.ViewDashboard); err != nil {
		u.printErr(err)
	} else {
		u.render(ctx, app.ViewDashboard)
	}
	return false
}

// registerScreen da de alta una cuenta nueva. No inicia sesión: el
// usuario vuelve al login, igual que en el flujo del backend.
func (u *ui) registerScreen(ctx context.Context) {
	prompt := func(label string) (string, bool) {
		fmt.Fprintf(u.out, "%s: ", label)
		return u.readLine()
	}
	name, ok := prompt("nombre")
	if !ok {
		return
	}
	email, ok := prompt("email")
	if !ok {
		return
	}
	pass, ok := prompt("password")
	if !ok {
		return
	}
	roleText, ok := prompt("rol (tutor|veterinarian|administrator)")
	if !ok {
		return
	}
	role, ok := session.ParseRole(roleText)
	if !ok {
		fmt.Fprintln(u.out, "rol desconocido")
		return
	}

	p, err := u.shell.Session().Register(ctx, session.RegisterInput{
		Name:     name,
		Email:    email,
		Password: pass,
		Role:     role,
	})
	if err != nil {
		u.printErr(err)
		return
	}
	fmt.Fprintf(u.out, "cuenta creada para %s; iniciá sesión para continuar\n", p.Email)
}

func (u *ui) dispatch(ctx context.Context, view app.View, cmd, rest string) {
	var err error
	switch view {
	case app.ViewPatients:
		err = u.rosterCmd(ctx, cmd, rest)
	case app.ViewSchedule:
		err = u.scheduleCmd(ctx, cmd, rest)
	case app.ViewMarketplace:
		err = u.marketCmd(ctx, cmd, rest)
	case app.ViewAssistant:
		err = u.assistantCmd(ctx, cmd, rest)
	case app.ViewDashboard:
		err = fmt.Errorf("comando desconocido: %s (probá 'help')", cmd)
	}
	if err != nil {
		u.printErr(err)
	}
}

// --- pacientes ---

func (u *ui) rosterCmd(ctx context.Context, cmd, rest string) error {
	switch cmd {
	case "search":
		u.shell.Roster.SetSearch(rest)
		u.renderRoster()
		return nil
	case "add":
		// add <nombre> <especie> <raza> <edad> <peso>
		f := strings.Fields(rest)
		if len(f) < 5 {
			return fmt.Errorf("uso: add <nombre> <especie> <raza> <edad> <peso>")
		}
		age, err := strconv.Atoi(f[3])
		if err != nil {
			return pets.ErrInvalidInput
		}
		weight, err := strconv.ParseFloat(f[4], 64)
		if err != nil {
			return pets.ErrInvalidInput
		}
		if err := u.shell.Roster.Create(ctx, pets.CreateInput{
			Name:    f[0],
			Species: f[1],
			Breed:   f[2],
			Age:     age,
			Weight:  weight,
		}); err != nil {
			return err
		}
		u.renderRoster()
		return nil
	default:
		return fmt.Errorf("comandos: search <término> | add | refresh")
	}
}

// --- agenda ---

func (u *ui) scheduleCmd(ctx context.Context, cmd, rest string) error {
	s := u.shell.Scheduler
	switch cmd {
	case "date":
		if err := s.SetDate(ctx, strings.TrimSpace(rest)); err != nil {
			return err
		}
	case "next":
		if err := s.NextDay(ctx); err != nil {
			return err
		}
	case "prev":
		if err := s.PrevDay(ctx); err != nil {
			return err
		}
	case "book":
		// book <HH:MM> <petID> <tipo>
		f := strings.Fields(rest)
		if len(f) != 3 {
			return fmt.Errorf("uso: book <HH:MM> <petID> <consultation|vaccine|follow_up|surgery>")
		}
		if err := s.Create(ctx, f[0], f[1], f[2]); err != nil {
			return err
		}
	case "done":
		if err := s.Complete(ctx, strings.TrimSpace(rest)); err != nil {
			return err
		}
	case "cancel":
		if err := s.Cancel(ctx, strings.TrimSpace(rest)); err != nil {
			return err
		}
	default:
		return fmt.Errorf("comandos: date <YYYY-MM-DD> | next | prev | book | done <id> | cancel <id>")
	}
	u.renderSchedule()
	return nil
}

// --- marketplace ---

func (u *ui) marketCmd(ctx context.Context, cmd, rest string) error {
	m := u.shell.Marketplace
	switch cmd {
	case "search":
		m.SetSearch(rest)
	case "category":
		c, ok := products.ParseCategory(rest)
		if !ok && strings.TrimSpace(rest) != "" {
			return products.ErrInvalidInput
		}
		m.SetCategory(c)
	case "buy":
		id := strings.TrimSpace(rest)
		for _, p := range m.Visible() {
			if p.ID == id {
				m.AddToCart(p)
				u.renderCart()
				return nil
			}
		}
		return products.ErrNotFound
	case "qty":
		f := strings.Fields(rest)
		if len(f) != 2 {
			return fmt.Errorf("uso: qty <productID> <delta>")
		}
		delta, err := strconv.Atoi(f[1])
		if err != nil {
			return products.ErrInvalidInput
		}
		m.UpdateQuantity(f[0], delta)
		u.renderCart()
		return nil
	case "rm":
		m.RemoveFromCart(strings.TrimSpace(rest))
		u.renderCart()
		return nil
	case "cart":
		m.OpenCart()
		u.renderCart()
		return nil
	case "close":
		m.CloseCart()
	case "checkout":
		if err := m.ProceedToPayment(); err != nil {
			return err
		}
		u.renderCart()
		return nil
	case "pay":
		method := paymentMethod(rest)
		fmt.Fprintln(u.out, "procesando pago...")
		order, err := m.ConfirmPayment(ctx, method)
		if err != nil {
			return err
		}
		fmt.Fprintf(u.out, "pedido %s confirmado — total R$ %s (%s)\n",
			order.ID, order.Total.StringFixed(2), order.Status.Label())
		return nil
	case "orders":
		m.SetTab(app.TabOrders)
		return u.renderOrders(ctx)
	case "catalog":
		m.SetTab(app.TabCatalog)
	default:
		return fmt.Errorf("comandos: search | category | buy <id> | qty | rm | cart | close | checkout | pay [método] | orders | catalog")
	}
	u.renderMarket()
	return nil
}

func paymentMethod(s string) orders.PaymentMethod {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pix":
		return orders.PaymentPix
	case "boleto":
		return orders.PaymentBoleto
	default:
		return orders.PaymentCreditCard
	}
}

// --- asistente ---

func (u *ui) assistantCmd(ctx context.Context, cmd, rest string) error {
	a := u.shell.Assistant
	switch cmd {
	case "case":
		// case <especie> <raza> <edad> <síntomas...>
		f := strings.SplitN(rest, " ", 4)
		if len(f) < 4 {
			return fmt.Errorf("uso: case <especie> <raza> <edad> <síntomas>")
		}
		age, err := strconv.Atoi(f[2])
		if err != nil {
			return assistant.ErrInvalidInput
		}
		out, err := a.Analyze(ctx, assistant.CaseInput{
			Species:  f[0],
			Breed:    f[1],
			Age:      age,
			Symptoms: f[3],
		})
		if err != nil {
			return err
		}
		fmt.Fprintln(u.out, out)
		return nil
	case "chat":
		reply, err := a.Send(ctx, rest)
		if err != nil {
			return err
		}
		fmt.Fprintln(u.out, reply)
		return nil
	default:
		return fmt.Errorf("comandos: case <especie> <raza> <edad> <síntomas> | chat <mensaje>")
	}
}

// --- render ---

func (u *ui) render(ctx context.Context, v app.View) {
	switch v {
	case app.ViewDashboard:
		u.renderDashboard()
	case app.ViewPatients:
		u.renderRoster()
	case app.ViewSchedule:
		u.renderSchedule()
	case app.ViewMarketplace:
		u.renderMarket()
	case app.ViewAssistant:
		fmt.Fprintln(u.out, "asistente clínico: 'case ...' o 'chat ...'")
	}
}

func (u *ui) renderDashboard() {
	k := u.shell.Dashboard.KPI()
	fmt.Fprintf(u.out, "facturación: R$ %s | turnos hoy: %d (%d concluidos, %d cancelados) | pacientes: %d (%d nuevos) | ocupación: %d%%\n",
		k.Revenue.StringFixed(2), k.AppointmentsToday, k.CompletedToday, k.CanceledToday, k.Patients, k.NewPatients, k.OccupancyRate)

	next := u.shell.Dashboard.NextUp()
	if len(next) == 0 {
		fmt.Fprintln(u.out, "sin próximos turnos hoy")
		return
	}
	for _, a := range next {
		fmt.Fprintf(u.out, "  %s  %s (%s) — %s\n", a.Time, a.PetName, a.OwnerName, a.Type.Label())
	}
}

func (u *ui) renderRoster() {
	w := tabwriter.NewWriter(u.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPACIENTE\tESPECIE\tRAZA\tEDAD\tPESO\tÚLTIMA VISITA")
	for _, p := range u.shell.Roster.Visible() {
		last := p.LastVisit
		if last == "" {
			last = "N/A"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%.1f\t%s\n",
			p.ID, p.Name, p.Species.Label(), p.Breed, p.Age, p.Weight, last)
	}
	w.Flush()
}

func (u *ui) renderSchedule() {
	s := u.shell.Scheduler
	fmt.Fprintf(u.out, "agenda %s\n", s.Date())

	items := s.Appointments()
	if len(items) == 0 {
		fmt.Fprintln(u.out, "sin turnos para esta fecha")
		return
	}

	w := tabwriter.NewWriter(u.out, 0, 4, 2, ' ', 0)
	for _, a := range items {
		actions := ""
		if s.CanTransition(a) {
			actions = "done|cancel " + a.ID
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			a.Time, a.PetName, a.OwnerName, a.Type.Label(), a.Status.Label(), actions)
	}
	w.Flush()
}

func (u *ui) renderMarket() {
	m := u.shell.Marketplace
	w := tabwriter.NewWriter(u.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPRODUCTO\tCATEGORÍA\tPRECIO\tSTOCK")
	for _, p := range m.Visible() {
		fmt.Fprintf(w, "%s\t%s\t%s\tR$ %s\t%d\n",
			p.ID, p.Name, p.Category.Label(), p.Price.StringFixed(2), p.Stock)
	}
	w.Flush()
	if n := m.CartCount(); n > 0 {
		fmt.Fprintf(u.out, "carrito: %d ítems — R$ %s\n", n, m.CartTotal().StringFixed(2))
	}
}

func (u *ui) renderCart() {
	m := u.shell.Marketplace
	items := m.CartItems()
	if len(items) == 0 {
		fmt.Fprintln(u.out, "carrito vacío")
		return
	}
	for _, it := range items {
		fmt.Fprintf(u.out, "  %dx %s — R$ %s\n", it.Quantity, it.Product.Name, it.Subtotal().StringFixed(2))
	}
	fmt.Fprintf(u.out, "total: R$ %s", m.CartTotal().StringFixed(2))
	if m.Step() == app.StepPayment {
		fmt.Fprint(u.out, "  → 'pay [credit_card|pix|boleto]' para confirmar")
	}
	fmt.Fprintln(u.out)
}

func (u *ui) renderOrders(ctx context.Context) error {
	list, err := u.shell.Marketplace.Orders(ctx)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Fprintln(u.out, "sin pedidos todavía")
		return nil
	}
	for _, o := range list {
		fmt.Fprintf(u.out, "%s  %s  R$ %s  %s (%s)\n",
			o.ID, o.CreatedAt.Format("2006-01-02"), o.Total.StringFixed(2), o.Status.Label(), o.PaymentMethod.Label())
	}
	return nil
}

func (u *ui) help() {
	fmt.Fprintln(u.out, `comandos globales:
  view <dashboard|patients|schedule|marketplace|ai-assistant>
  refresh | logout | exit
cada vista tiene sus propios comandos; un comando inválido los lista.`)
}

func (u *ui) printErr(err error) {
	switch {
	case err == session.ErrNotAuthenticated:
		fmt.Fprintln(u.out, "necesitás iniciar sesión")
	default:
		fmt.Fprintf(u.out, "error: %v\n", err)
	}
}

func (u *ui) readLine() (string, bool) {
	if !u.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(u.in.Text()), true
}

func splitCmd(line string) (cmd, rest string) {
	parts := strings.SplitN(line, " ", 2)
	cmd = strings.ToLower(strings.TrimSpace(parts[0]))
	if len(parts) == 2 {
		rest = strings.TrimSpace(parts[1])
	}
	return cmd, rest
}
