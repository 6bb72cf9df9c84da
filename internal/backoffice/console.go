package backoffice

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"homestay/internal/auth"
	adminDto "homestay/internal/domains/admin/model/dto"
	adminService "homestay/internal/domains/admin/service"
	bookingModel "homestay/internal/domains/booking/model"
	contactModel "homestay/internal/domains/contact/model"
	guestModel "homestay/internal/domains/guest/model"
	paymentModel "homestay/internal/domains/payment/model"
	reviewModel "homestay/internal/domains/review/model"
	"io"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/fatih/color"
)

const consoleHelp = `commands:
  login <email> <password>   start an admin session
  logout                     end it
  use <entity>               bookings, guests, payments, reviews or contacts
  list                       refetch and print the current page
  status <status|all>        server-side status filter
  search <query>             filter the fetched rows
  rating <1-5|0>             reviews only, 0 clears
  page <n>                   fetch another page
  show <id> / close          open or close a record
  <action> <id>              run a row action, e.g. confirm 42
  help / quit`

var errLoginRequired = errors.New("please log in first")

// view is the entity-independent surface of a Page the console drives.
type view interface {
	Entity() string
	Load(ctx context.Context) error
	SetStatus(ctx context.Context, status string) error
	SetPage(ctx context.Context, page int) error
	SetSearch(query string)
	Select(id string) bool
	CloseDetail()
	Do(ctx context.Context, name, id string) error
	Actions() []string
	Confirms(name string) bool
	Busy() string
	rows() []string
	detail() (string, bool)
	summary() string
}

type listing[T any] struct {
	*Page[T]
	format func(T) string
	badges func(*Page[T]) string
}

func (l listing[T]) rows() []string {
	visible := l.Visible()
	rows := make([]string, 0, len(visible))

	busy := l.Busy()
	for _, item := range visible {
		row := l.format(item)
		if busy != "" && l.cfg.ID(item) == busy {
			row += " (working...)"
		}

		rows = append(rows, row)
	}

	return rows
}

func (l listing[T]) detail() (string, bool) {
	selected, ok := l.Selected()
	if !ok {
		return "", false
	}

	body, err := json.MarshalIndent(selected, "", "  ")
	if err != nil {
		return l.format(selected), true
	}

	return string(body), true
}

func (l listing[T]) summary() string {
	if l.badges == nil {
		return ""
	}

	return l.badges(l.Page)
}

// Console is the line-oriented admin back office.
type Console struct {
	admin    adminService.Admin
	session  auth.Session
	prompter *Prompter
	views    map[string]view
	reviews  *Page[reviewModel.Review]
	out      io.Writer

	mu      sync.Mutex
	current view
	running sync.WaitGroup
}

func NewConsole(
	admin adminService.Admin,
	session auth.Session,
	prompter *Prompter,
	out io.Writer,
	bookings *Page[bookingModel.Booking],
	guests *Page[guestModel.Guest],
	payments *Page[paymentModel.Payment],
	reviews *Page[reviewModel.Review],
	contacts *Page[contactModel.Contact],
) *Console {
	views := map[string]view{
		"bookings": listing[bookingModel.Booking]{Page: bookings, format: formatBooking},
		"guests":   listing[guestModel.Guest]{Page: guests, format: formatGuest},
		"payments": listing[paymentModel.Payment]{Page: payments, format: formatPayment, badges: paymentBadges},
		"reviews":  listing[reviewModel.Review]{Page: reviews, format: formatReview, badges: reviewBadges},
		"contacts": listing[contactModel.Contact]{Page: contacts, format: formatContact, badges: contactBadges},
	}

	return &Console{
		admin:    admin,
		session:  session,
		prompter: prompter,
		views:    views,
		reviews:  reviews,
		out:      out,
	}
}

// Run reads commands from in until quit or EOF. Pending actions are awaited before it
// returns.
func (c *Console) Run(ctx context.Context, in io.Reader) error {
	defer c.running.Wait()
	defer c.prompter.close()

	fmt.Fprintln(c.out, `homestay back office, type "help" for commands`)

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := scanner.Text()
		if c.prompter.answer(line) {
			continue
		}

		if err := c.Exec(ctx, line); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}

			color.New(color.FgRed).Fprintln(c.out, err.Error())
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read console input: %w", err)
	}

	return nil
}

// Exec runs a single command line. quit is reported as io.EOF.
func (c *Console) Exec(ctx context.Context, line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}

	command, args := strings.ToLower(fields[0]), fields[1:]

	switch command {
	case "help":
		fmt.Fprintln(c.out, consoleHelp)

		return nil
	case "quit", "exit":
		return io.EOF
	case "login":
		return c.login(ctx, args)
	}

	if _, ok := c.session.Authenticated(ctx); !ok {
		return errLoginRequired
	}

	switch command {
	case "logout":
		c.admin.Logout(ctx)
		fmt.Fprintln(c.out, "Logged out")

		return nil
	case "use":
		return c.use(ctx, args)
	}

	current := c.view()
	if current == nil {
		return errors.New(`choose a list first with "use <entity>"`)
	}

	switch command {
	case "list":
		return c.reload(ctx, current, current.Load)
	case "status":
		status := strings.Join(args, " ")

		return c.reload(ctx, current, func(ctx context.Context) error { return current.SetStatus(ctx, status) })
	case "page":
		page, err := c.intArg(args)
		if err != nil {
			return err
		}

		return c.reload(ctx, current, func(ctx context.Context) error { return current.SetPage(ctx, page) })
	case "search":
		current.SetSearch(strings.Join(args, " "))
		c.print(current)

		return nil
	case "rating":
		return c.rating(current, args)
	case "show":
		return c.show(current, args)
	case "close":
		current.CloseDetail()

		return nil
	}

	if slices.Contains(current.Actions(), command) {
		if len(args) != 1 {
			return fmt.Errorf("usage: %s <id>", command)
		}

		c.run(ctx, current, command, args[0])

		return nil
	}

	return fmt.Errorf("unknown command %q", command)
}

func (c *Console) login(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return errors.New("usage: login <email> <password>")
	}

	res := c.admin.Login(ctx, adminDto.LoginRequest{Email: args[0], Password: args[1]})
	if !res.Success {
		return res.Err()
	}

	color.New(color.FgGreen).Fprintf(c.out, "Logged in as %s\n", args[0])

	return nil
}

func (c *Console) use(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.New("usage: use <entity>")
	}

	next, ok := c.views[strings.ToLower(args[0])]
	if !ok {
		return fmt.Errorf("unknown list %q", args[0])
	}

	c.mu.Lock()
	c.current = next
	c.mu.Unlock()

	return c.reload(ctx, next, next.Load)
}

func (c *Console) view() view {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.current
}

func (c *Console) reload(ctx context.Context, current view, load func(context.Context) error) error {
	if err := load(ctx); err != nil && !errors.Is(err, ErrSuperseded) {
		return err
	}

	c.print(current)

	return nil
}

func (c *Console) print(current view) {
	rows := current.rows()
	if len(rows) == 0 {
		fmt.Fprintf(c.out, "No %s found\n", current.Entity()+"s")
	}

	for _, row := range rows {
		fmt.Fprintln(c.out, row)
	}

	if summary := current.summary(); summary != "" {
		color.New(color.FgCyan).Fprintln(c.out, summary)
	}
}

func (c *Console) show(current view, args []string) error {
	if len(args) != 1 {
		return errors.New("usage: show <id>")
	}

	if !current.Select(args[0]) {
		return fmt.Errorf("no %s with id %s on this page", current.Entity(), args[0])
	}

	detail, _ := current.detail()
	fmt.Fprintln(c.out, detail)

	return nil
}

func (c *Console) rating(current view, args []string) error {
	if current.Entity() != reviewModel.EntityName {
		return errors.New("rating filter applies to reviews only")
	}

	rating, err := c.intArg(args)
	if err != nil {
		return err
	}

	c.reviews.SetFilter(RatingFilter(rating))
	c.print(current)

	return nil
}

func (c *Console) intArg(args []string) (int, error) {
	if len(args) != 1 {
		return 0, errors.New("expected a single number")
	}

	value, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, fmt.Errorf("not a number: %s", args[0])
	}

	return value, nil
}

// run executes the action in the background so the busy guard stays observable. When
// the action asks for confirmation the input loop is held until the prompt is up, so the
// next line answers it.
func (c *Console) run(ctx context.Context, current view, name, id string) {
	finished := make(chan struct{})

	c.running.Add(1)

	go func() {
		defer c.running.Done()
		defer close(finished)

		err := current.Do(ctx, name, id)

		switch {
		case err == nil:
			color.New(color.FgGreen).Fprintf(c.out, "%s %s: done\n", name, id)

			if detail, ok := current.detail(); ok {
				fmt.Fprintln(c.out, detail)
			}
		case errors.Is(err, ErrDeclined):
			fmt.Fprintf(c.out, "%s %s: cancelled\n", name, id)
		default:
			color.New(color.FgRed).Fprintf(c.out, "%s %s: %v\n", name, id, err)
		}
	}()

	if current.Confirms(name) {
		select {
		case <-c.prompter.asked:
		case <-finished:
		}
	}
}

func formatBooking(b bookingModel.Booking) string {
	return fmt.Sprintf("%s  %-10s  %-20s  %s to %s  %d guest(s)  %s  [%s]",
		b.ID, b.Reference, b.GuestName, b.CheckIn, b.CheckOut, b.Guests, b.AccommodationName(), b.Status)
}

func formatGuest(g guestModel.Guest) string {
	return fmt.Sprintf("%s  %-20s  %-28s  %s  visits: %d  [%s]", g.ID, g.Name, g.Email, g.VisitDate, g.TotalVisits, g.Status)
}

func formatPayment(p paymentModel.Payment) string {
	return fmt.Sprintf("%s  booking %s  %-20s  %10.2f  %s  %s  [%s]", p.ID, p.BookingID, p.GuestName, p.Amount, p.Method, p.Date, p.Status)
}

func formatReview(r reviewModel.Review) string {
	return fmt.Sprintf("%s  %-20s  %s  %s  [%s]", r.ID, r.Name, strings.Repeat("*", r.Rating), r.Location, r.Status)
}

func formatContact(c contactModel.Contact) string {
	return fmt.Sprintf("%s  %-20s  %-28s  %s  [%s]", c.ID, c.Name, c.Email, c.Subject, c.Status)
}

func paymentBadges(page *Page[paymentModel.Payment]) string {
	totals := PaymentTotals(page)

	return fmt.Sprintf("revenue %.2f, pending %.2f", totals.Revenue, totals.Pending)
}

func reviewBadges(page *Page[reviewModel.Review]) string {
	return fmt.Sprintf("average rating %.1f", AverageRating(page))
}

func contactBadges(page *Page[contactModel.Contact]) string {
	counts := ContactCounts(page)

	return fmt.Sprintf("new %d, read %d, replied %d", counts.New, counts.Read, counts.Replied)
}
