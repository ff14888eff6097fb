package prompt

// SampleCode is generated for when no input file is given.
const SampleCode = `def calculator(a, b, operator):
    if operator == 'addition':
        return a + b
    elif operator == 'subtraction':
        return a - b
    elif operator == 'multiplication':
        return a * b
    elif operator == 'division':
        if b == 0:
            raise ValueError("Division by zero not allowed")
        return a / b
    else:
        raise ValueError("Operation not supported")
`
