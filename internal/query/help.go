package query

const HelpText = `Available commands:

SELECT * - list every record
SELECT * WHERE <field><op><value> - records matching a condition
    Example: SELECT * WHERE price>1000

DELETE * - delete every record
DELETE * WHERE <field><op><value> - delete records matching a condition
    Example: DELETE * WHERE quantity<5

INSERT <field>=<value> ... - add a record, every field should be set
    Example: INSERT id=777 name="Lamp" quantity=7 price=1000 supplier="Acme"

UPDATE SET <field>=<value> WHERE <field>=<value> - change a field
    Example: UPDATE SET price=900 WHERE name="TV"

HELP - show this text

Fields: id, name, quantity, price, supplier
Operators: = > < >= <= (name and supplier only compare with =)
`
